// Command minijs parses minijs programs and prints their tokens, syntax
// trees or node statistics.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/you-not-fish/minijs/internal/diag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line args and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		var src string
		var serr *sourceError
		if errors.As(err, &serr) {
			src = serr.src
		}
		fmt.Fprint(stderr, diag.NewRenderer(stderr).Render(err, src))
		return 1
	}
	return 0
}

// sourceError pairs a syntax error with the program text it points into.
type sourceError struct {
	err error
	src string
}

func (e *sourceError) Error() string { return e.err.Error() }
func (e *sourceError) Unwrap() error { return e.err }
