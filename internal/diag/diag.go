// Package diag renders minijs syntax errors for people: a located message,
// the offending source line and a caret under the failing column.
package diag

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/you-not-fish/minijs/internal/syntax"
)

// Colors
var (
	colorError = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")
	colorPos   = lipgloss.Color("#F9FAFB")
)

// Renderer formats errors, coloring them when its output is a terminal.
type Renderer struct {
	posStyle    lipgloss.Style
	labelStyle  lipgloss.Style
	gutterStyle lipgloss.Style
	caretStyle  lipgloss.Style
}

// NewRenderer returns a Renderer for output written to w. Colors are used
// only if w is a terminal that supports them.
func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		posStyle:    r.NewStyle().Bold(true).Foreground(colorPos),
		labelStyle:  r.NewStyle().Bold(true).Foreground(colorError),
		gutterStyle: r.NewStyle().Foreground(colorMuted),
		caretStyle:  r.NewStyle().Bold(true).Foreground(colorError),
	}
}

// Render formats err as plain text.
func Render(err error, src string) string {
	return NewRenderer(io.Discard).Render(err, src)
}

// Render formats err. Lexical and parse errors are shown with the source
// line from src they point into; any other error renders as its message.
func (r *Renderer) Render(err error, src string) string {
	if err == nil {
		return ""
	}

	var (
		lerr *syntax.LexError
		perr *syntax.ParseError
		pos  syntax.Pos
		msg  string
	)
	switch {
	case errors.As(err, &lerr):
		pos = lerr.Pos
		msg = lexMessage(lerr)
	case errors.As(err, &perr):
		pos = perr.Pos
		msg = parseMessage(perr)
	default:
		return r.labelStyle.Render("error:") + " " + err.Error() + "\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n", r.posStyle.Render(pos.String()+":"), r.labelStyle.Render("error:"), msg)

	line, ok := sourceLine(src, int(pos.Line()))
	if !ok {
		return b.String()
	}

	gutter := fmt.Sprintf(" %d | ", pos.Line())
	blank := strings.Repeat(" ", len(gutter)-2) + "| "
	fmt.Fprintf(&b, "%s%s\n", r.gutterStyle.Render(gutter), line)
	fmt.Fprintf(&b, "%s%s%s\n", r.gutterStyle.Render(blank), caretPad(line, int(pos.Col())), r.caretStyle.Render("^"))
	return b.String()
}

func lexMessage(e *syntax.LexError) string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("unexpected character %q", e.Char)
}

func parseMessage(e *syntax.ParseError) string {
	if e.Msg != "" {
		return fmt.Sprintf("%s (expected %s, found %s)", e.Msg, e.Expected, e.Found)
	}
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
}

// sourceLine returns the 1-based line n of src without its line terminator.
func sourceLine(src string, n int) (string, bool) {
	if n < 1 {
		return "", false
	}
	lines := strings.Split(src, "\n")
	if n > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[n-1], "\r"), true
}

// caretPad returns the whitespace that puts a caret under column col of
// line. Tabs are kept so the caret lines up however tabs are displayed.
func caretPad(line string, col int) string {
	var b strings.Builder
	i := 1
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteByte(' ')
		}
		i++
	}
	for ; i < col; i++ {
		b.WriteByte(' ')
	}
	return b.String()
}
