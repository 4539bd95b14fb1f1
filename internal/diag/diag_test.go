package diag

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/you-not-fish/minijs/internal/syntax"
)

func parseErr(t *testing.T, src string) error {
	t.Helper()
	_, err := syntax.Parse("test.mjs", src)
	if err == nil {
		t.Fatalf("Parse(%q) should fail", src)
	}
	return err
}

func TestRenderParseError(t *testing.T) {
	src := "let x = 1;\nlet = 2;\n"
	got := Render(parseErr(t, src), src)

	want := "test.mjs:2:5: error: expected Identifier, found SimpleAssign\n" +
		" 2 | let = 2;\n" +
		"   |     ^\n"
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderLexError(t *testing.T) {
	src := "@@@"
	got := Render(parseErr(t, src), src)

	want := "test.mjs:1:1: error: unexpected character '@'\n" +
		" 1 | @@@\n" +
		"   | ^\n"
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderInvalidAssignTarget(t *testing.T) {
	src := "1 = 2;"
	got := Render(parseErr(t, src), src)

	for _, want := range []string{
		"test.mjs:1:3: error: invalid left-hand side in assignment expression",
		"found NumericLiteral",
		"   |   ^\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q:\n%s", want, got)
		}
	}
}

func TestRenderKeepsTabs(t *testing.T) {
	src := "\tx = 1 +;"
	got := Render(parseErr(t, src), src)

	if !strings.Contains(got, "   | \t       ^\n") {
		t.Errorf("caret not aligned under the tab-indented line:\n%q", got)
	}
}

func TestRenderAtEndOfInput(t *testing.T) {
	src := "{ x;"
	got := Render(parseErr(t, src), src)

	want := "test.mjs:1:5: error: expected RBrace, found end of input\n" +
		" 1 | { x;\n" +
		"   |     ^\n"
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderWrappedError(t *testing.T) {
	src := "a # b;"
	err := fmt.Errorf("parsing prog.mjs: %w", parseErr(t, src))
	got := Render(err, src)

	if !strings.HasPrefix(got, "test.mjs:1:3: error: unexpected character '#'\n") {
		t.Errorf("wrapped error not unwrapped:\n%s", got)
	}
}

func TestRenderOtherError(t *testing.T) {
	got := Render(errors.New("opening source: no such file"), "")
	if got != "error: opening source: no such file\n" {
		t.Errorf("Render() = %q", got)
	}
	if Render(nil, "") != "" {
		t.Error("Render(nil) should be empty")
	}
}

func TestSourceLine(t *testing.T) {
	tests := []struct {
		src  string
		n    int
		want string
		ok   bool
	}{
		{"a\nb\r\nc", 2, "b", true},
		{"a\nb", 3, "", false},
		{"a", 0, "", false},
		{"", 1, "", true},
	}

	for _, tt := range tests {
		got, ok := sourceLine(tt.src, tt.n)
		if got != tt.want || ok != tt.ok {
			t.Errorf("sourceLine(%q, %d) = (%q, %v), want (%q, %v)", tt.src, tt.n, got, ok, tt.want, tt.ok)
		}
	}
}
