package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/minijs/internal/config"
	"github.com/you-not-fish/minijs/internal/logging"
	"github.com/you-not-fish/minijs/internal/source"
	"github.com/you-not-fish/minijs/internal/syntax"
)

// app holds the state shared by all subcommands.
type app struct {
	cfgFile string
	verbose bool

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.Discard()}

	root := &cobra.Command{
		Use:   "minijs",
		Short: "Parse minijs programs and inspect their syntax",
		Long: `minijs scans and parses programs written in minijs, a small
JavaScript-like language, and prints the result.

Input is a file path, - for standard input, or --sample for the
built-in sample program.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $MINIJS_CONFIG or ./minijs.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newASTCmd(a),
		newTokensCmd(a),
		newStatsCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, path, err := config.Resolve(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.verbose {
		level = "debug"
	}
	log, err := logging.New(level, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log.With("cmd", cmd.Name())

	if path == "" {
		a.log.Debug("using default config")
	} else {
		a.log.Debug("config loaded", "path", path)
	}
	return nil
}

// addSampleFlag registers --sample on cmd.
func addSampleFlag(cmd *cobra.Command, sample *bool) {
	cmd.Flags().BoolVar(sample, "sample", false, "use the built-in sample program")
}

// input returns the name and text of the program selected by args and the
// --sample flag.
func (a *app) input(args []string, sample bool) (name, src string, err error) {
	if sample {
		if len(args) > 0 {
			return "", "", errors.New("--sample takes no file argument")
		}
		a.log.Debug("using sample program", "bytes", len(source.Sample()))
		return source.SampleName, source.Sample(), nil
	}
	if len(args) == 0 {
		return "", "", errors.New("no input: give a file, - for stdin, or --sample")
	}

	name = args[0]
	start := time.Now()
	src, err = source.Load(name)
	if err != nil {
		return "", "", err
	}
	if name == source.Stdin {
		name = "<stdin>"
	}
	a.log.Debug("source loaded", "file", name, "bytes", len(src), "duration", time.Since(start))
	return name, src, nil
}

// parse parses src, attaching the text to any syntax error for rendering.
func (a *app) parse(name, src string) (*syntax.Program, error) {
	start := time.Now()
	prog, err := syntax.Parse(name, src)
	if err != nil {
		a.log.Debug("parse failed", "file", name, "error", err)
		return nil, &sourceError{err: err, src: src}
	}
	a.log.Debug("parsed", "file", name, "statements", len(prog.Body), "duration", time.Since(start))
	return prog, nil
}

// load is input followed by parse.
func (a *app) load(args []string, sample bool) (*syntax.Program, error) {
	name, src, err := a.input(args, sample)
	if err != nil {
		return nil, err
	}
	prog, err := a.parse(name, src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return prog, nil
}
