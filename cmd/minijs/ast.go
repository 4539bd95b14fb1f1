package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/minijs/internal/syntax"
)

func newASTCmd(a *app) *cobra.Command {
	var (
		format string
		indent int
		sample bool
	)

	cmd := &cobra.Command{
		Use:   "ast [file|-]",
		Short: "Parse a program and print its syntax tree",
		Long: `Parse a program and print its syntax tree as an indented text
tree, JSON or YAML. The format and indentation default to the
[output] section of the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Output.Format
			}
			if !cmd.Flags().Changed("indent") {
				indent = a.cfg.Output.Indent
			}
			switch format {
			case "text", "json", "yaml":
			default:
				return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
			}
			if indent < 0 {
				return fmt.Errorf("--indent must not be negative, got %d", indent)
			}

			prog, err := a.load(args, sample)
			if err != nil {
				return err
			}
			return emitAST(cmd, prog, format, indent)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	cmd.Flags().IntVar(&indent, "indent", 2, "spaces per level for json and yaml; 0 gives compact json")
	addSampleFlag(cmd, &sample)
	return cmd
}

// emitAST writes prog to the command's output in the given format.
func emitAST(cmd *cobra.Command, prog *syntax.Program, format string, indent int) error {
	w := cmd.OutOrStdout()
	switch format {
	case "text":
		syntax.Fprint(w, prog)
		return nil
	case "json":
		return syntax.FprintJSON(w, prog, indent)
	case "yaml":
		return syntax.FprintYAML(w, prog, indent)
	}
	return fmt.Errorf("unknown format %q", format)
}
