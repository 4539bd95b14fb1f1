package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/minijs/internal/syntax"
)

func newTokensCmd(a *app) *cobra.Command {
	var sample bool

	cmd := &cobra.Command{
		Use:   "tokens [file|-]",
		Short: "Scan a program and print its tokens with positions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, err := a.input(args, sample)
			if err != nil {
				return err
			}
			return emitTokens(cmd, name, src)
		},
	}

	addSampleFlag(cmd, &sample)
	return cmd
}

// emitTokens scans src and prints all tokens with positions. Tokens scanned
// before a lexical error are printed before the error is returned.
func emitTokens(cmd *cobra.Command, name, src string) error {
	w := cmd.OutOrStdout()

	// Print header
	fmt.Fprintf(w, "%-20s %-16s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Fprintf(w, "%-20s %-16s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 16), strings.Repeat("-", 20))

	s := syntax.NewScanner(name, src)
	for {
		tok, err := s.Next()
		if err != nil {
			return &sourceError{err: err, src: src}
		}

		var lit string
		if tok.Kind.HasPayload() {
			lit = formatLiteral(tok.Text())
		}
		fmt.Fprintf(w, "%-20s %-16s %s\n", tok.Pos, tok.Kind, lit)

		if tok.IsEOF() {
			return nil
		}
	}
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	// Show the content with escapes visible for readability
	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
