package syntax

import "fmt"

// LexError is reported by the Scanner when no lexical rule matches at the
// cursor. Scanning cannot continue past it.
type LexError struct {
	Pos  Pos
	Char rune   // offending character
	Msg  string // optional detail; empty means "unexpected character"
}

func (e *LexError) Error() string {
	if e.Msg != "" {
		return e.Pos.String() + ": " + e.Msg
	}
	return fmt.Sprintf("%s: unexpected character %q", e.Pos, e.Char)
}

// ParseError is reported by the Parser at the first token it cannot accept.
// Expected and Found describe a token mismatch; Msg is set for errors that
// are not a plain mismatch, such as an invalid assignment target.
type ParseError struct {
	Pos      Pos
	Expected string
	Found    string
	Msg      string
}

func (e *ParseError) Error() string {
	if e.Msg != "" {
		return e.Pos.String() + ": " + e.Msg
	}
	return fmt.Sprintf("%s: expected %s, found %s", e.Pos, e.Expected, e.Found)
}

// describe returns how a found token is named in a ParseError.
func describe(t Token) string {
	if t.IsEOF() {
		return "end of input"
	}
	return t.Kind.String()
}
