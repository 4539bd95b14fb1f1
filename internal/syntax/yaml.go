package syntax

import (
	"io"

	"gopkg.in/yaml.v3"
)

// FprintYAML writes a YAML representation of the AST to w, with the same
// fields in the same order as FprintJSON. A non-positive indent keeps the
// encoder's default.
func FprintYAML(w io.Writer, node Node, indent int) error {
	enc := yaml.NewEncoder(w)
	if indent > 0 {
		enc.SetIndent(indent)
	}
	if err := enc.Encode(encode(node)); err != nil {
		return err
	}
	return enc.Close()
}
