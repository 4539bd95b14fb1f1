package syntax

import (
	"fmt"
	"strconv"

	"github.com/dlclark/regexp2"
)

// rule is one entry of the lexical rule table. A rule with skip set discards
// its match; any other rule yields a token of kind.
type rule struct {
	re   *regexp2.Regexp
	kind Kind
	skip bool
}

// wordEnd rejects a keyword match that continues into a longer identifier.
const wordEnd = `(?![A-Za-z0-9_])`

// pattern compiles expr anchored at the scan position.
func pattern(expr string) *regexp2.Regexp {
	return regexp2.MustCompile(`\G(?:`+expr+`)`, regexp2.None)
}

func skip(expr string) rule           { return rule{re: pattern(expr), skip: true} }
func tok(expr string, kind Kind) rule { return rule{re: pattern(expr), kind: kind} }

// kw builds the rule for a keyword kind, whose name is its spelling.
func kw(kind Kind) rule {
	return rule{re: pattern(regexp2.Escape(kind.String()) + wordEnd), kind: kind}
}

// rules is tried top to bottom at every scan position and the first match
// wins. The order matters:
//   - keywords and boolean literals precede the identifier rule
//   - [=!]= precedes = and !
//   - compound assignment precedes = and the arithmetic operators
//   - <= and >= are matched by the relational rule before < and > can split them
var rules = []rule{
	// whitespace and comments
	skip(`\s+`),
	skip(`//[^\n]*`),
	skip(`/\*[\s\S]*?\*/`),

	// punctuation
	tok(`;`, _Semi),
	tok(`\{`, _Lbrace),
	tok(`\}`, _Rbrace),
	tok(`\(`, _Lparen),
	tok(`\)`, _Rparen),
	tok(`,`, _Comma),
	tok(`\.`, _Dot),
	tok(`\[`, _Lbrack),
	tok(`\]`, _Rbrack),

	// keywords
	kw(_Let),
	kw(_If),
	kw(_Else),
	tok(`true`+wordEnd, _Boolean),
	tok(`false`+wordEnd, _Boolean),
	kw(_Null),
	kw(_While),
	kw(_Do),
	kw(_For),
	kw(_Def),
	kw(_Return),
	kw(_Class),
	kw(_This),
	kw(_New),
	kw(_Super),
	kw(_Extends),

	// numbers and identifiers
	tok(`[0-9]+`, _Number),
	tok(`[A-Za-z0-9_]+`, _Name),

	// operators
	tok(`[=!]=`, _EqualityOp),
	tok(`[*/+\-]=`, _ComplexAssign),
	tok(`=`, _SimpleAssign),
	tok(`[<>]=?`, _RelationalOp),
	tok(`[+\-]`, _AdditiveOp),
	tok(`[*/]`, _MultiplicativeOp),
	tok(`&&`, _LogicalAnd),
	tok(`\|\|`, _LogicalOr),
	tok(`!`, _LogicalNot),

	// strings
	tok(`"[^"]*"`, _String),
	tok(`'[^']*'`, _String),
}

// Scanner performs lexical analysis on minijs source text. It is pull-based:
// every call to Next scans exactly one token starting at the cursor.
type Scanner struct {
	filename string
	src      []rune

	// cursor
	offs int    // rune offset
	line uint32 // 1-based line of offs
	col  uint32 // 1-based column of offs
}

// NewScanner creates a new Scanner over src. The filename is only used in
// positions.
func NewScanner(filename, src string) *Scanner {
	return &Scanner{
		filename: filename,
		src:      []rune(src),
		line:     1,
		col:      1,
	}
}

// Next scans and returns the next token. At the end of input it returns an
// EOF token, on this and every later call. If no rule matches at the cursor
// Next returns a *LexError and the cursor does not move.
func (s *Scanner) Next() (Token, error) {
	for s.offs < len(s.src) {
		r, m, err := s.match()
		if err != nil {
			return Token{}, err
		}
		if m == nil {
			return Token{}, &LexError{Pos: s.pos(), Char: s.src[s.offs]}
		}

		pos := s.pos()
		lit := m.String()
		s.advance(m.Length)
		if r.skip {
			continue
		}
		return s.token(r.kind, lit, pos)
	}
	return Token{Kind: _EOF, Pos: s.pos()}, nil
}

// Pos returns the position of the cursor.
func (s *Scanner) Pos() Pos {
	return s.pos()
}

// match returns the first rule matching at the cursor and its match, or a
// nil match if no rule applies.
func (s *Scanner) match() (*rule, *regexp2.Match, error) {
	for i := range rules {
		r := &rules[i]
		m, err := r.re.FindRunesMatchStartingAt(s.src, s.offs)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: scanning: %w", s.pos(), err)
		}
		if m != nil && m.Index == s.offs && m.Length > 0 {
			return r, m, nil
		}
	}
	return nil, nil, nil
}

// token builds the token of the given kind from the matched text.
func (s *Scanner) token(kind Kind, lit string, pos Pos) (Token, error) {
	t := Token{Kind: kind, Pos: pos}

	switch {
	case kind == _Number:
		n, err := strconv.Atoi(lit)
		if err != nil {
			return Token{}, &LexError{
				Pos:  pos,
				Char: []rune(lit)[0],
				Msg:  "integer literal out of range: " + lit,
			}
		}
		t.Int = n

	case kind == _String:
		// both delimiters are single-byte quotes
		t.Lit = lit[1 : len(lit)-1]

	case kind == _Boolean:
		t.Bool = lit == "true"

	case kind == _Name, kind.IsOperator():
		t.Lit = lit
	}

	return t, nil
}

// advance moves the cursor n runes forward, keeping line and column current.
func (s *Scanner) advance(n int) {
	for _, r := range s.src[s.offs : s.offs+n] {
		if r == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
	}
	s.offs += n
}

func (s *Scanner) pos() Pos {
	return NewPos(s.filename, s.offs, s.line, s.col)
}

// Tokenize scans all of src and returns its tokens, ending with the EOF token.
func Tokenize(filename, src string) ([]Token, error) {
	s := NewScanner(filename, src)
	var toks []Token
	for {
		t, err := s.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, t)
		if t.IsEOF() {
			return toks, nil
		}
	}
}
