package syntax

import (
	"encoding/json"
	"io"
	"strings"
)

// FprintJSON writes a JSON representation of the AST to w. Each object
// starts with its "type"; indent is the number of spaces per level, and
// zero writes compact output.
func FprintJSON(w io.Writer, node Node, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	return enc.Encode(encode(node))
}
