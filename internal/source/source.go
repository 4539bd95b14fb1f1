// Package source loads minijs program text from files, standard input or the
// embedded sample program.
package source

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// SampleName is the name reported for the embedded sample program.
const SampleName = "sample.mjs"

//go:embed sample.mjs
var sample string

// Sample returns the embedded sample program.
func Sample() string {
	return sample
}

// Load reads the program at path. The path "-" reads standard input.
func Load(path string) (string, error) {
	if path == Stdin {
		src, err := Read(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return src, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening source: %w", err)
	}
	defer f.Close()

	src, err := Read(f)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return src, nil
}

// Read returns the text of r. Input is taken as UTF-8 unless it starts with
// a UTF-8 or UTF-16 byte order mark, which selects the encoding and is
// dropped.
func Read(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
