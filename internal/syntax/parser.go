package syntax

// Parser performs syntax analysis on minijs source text. It pulls tokens
// from a Scanner one at a time and keeps a single token of lookahead.
//
// Parsing stops at the first error: a *LexError from the scanner or a
// *ParseError from the grammar. No partial tree is returned.
type Parser struct {
	scanner *Scanner
	tok     Token // lookahead
}

// bailout carries the first error from the point of failure up to Parse.
type bailout struct {
	err error
}

// NewParser creates a new Parser for src. A Parser parses its input once.
func NewParser(filename, src string) *Parser {
	return &Parser{scanner: NewScanner(filename, src)}
}

// Parse parses src as a complete program.
func Parse(filename, src string) (*Program, error) {
	return NewParser(filename, src).Parse()
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses the whole input and returns its Program node.
func (p *Parser) Parse() (prog *Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			prog, err = nil, b.err
		}
	}()

	p.next() // prime the lookahead
	return &Program{Body: p.stmtList(_EOF)}, nil
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances the lookahead to the next token.
func (p *Parser) next() {
	t, err := p.scanner.Next()
	if err != nil {
		panic(bailout{err})
	}
	p.tok = t
}

// got reports whether the lookahead is of kind k.
// If so, it consumes the token.
func (p *Parser) got(k Kind) bool {
	if p.tok.Kind == k {
		p.next()
		return true
	}
	return false
}

// want consumes and returns the lookahead if it is of kind k.
// Otherwise parsing fails.
func (p *Parser) want(k Kind) Token {
	t := p.tok
	if t.Kind != k {
		p.errorExpected(k.String())
	}
	p.next()
	return t
}

// ----------------------------------------------------------------------------
// Error handling

// errorExpected fails at the lookahead, which is not what was expected.
func (p *Parser) errorExpected(what string) {
	panic(bailout{&ParseError{
		Pos:      p.tok.Pos,
		Expected: what,
		Found:    describe(p.tok),
	}})
}

// syntaxError fails at pos with a free-form message.
func (p *Parser) syntaxError(pos Pos, msg, expected, found string) {
	panic(bailout{&ParseError{
		Pos:      pos,
		Expected: expected,
		Found:    found,
		Msg:      msg,
	}})
}

// ----------------------------------------------------------------------------
// Statements

// stmtList parses one or more statements, up to end of input or the stop
// kind, whichever comes first. The stop token is not consumed.
func (p *Parser) stmtList(stop Kind) []Stmt {
	list := []Stmt{p.stmt()}
	for p.tok.Kind != _EOF && p.tok.Kind != stop {
		list = append(list, p.stmt())
	}
	return list
}

// stmt parses a statement.
func (p *Parser) stmt() Stmt {
	switch p.tok.Kind {
	case _Semi:
		return p.emptyStmt()
	case _If:
		return p.ifStmt()
	case _Lbrace:
		return p.blockStmt()
	case _Let:
		return p.varStmt()
	case _Def:
		return p.funcDecl()
	case _Class:
		return p.classDecl()
	case _Return:
		return p.returnStmt()
	case _While, _Do, _For:
		return p.iterationStmt()
	default:
		return p.exprStmt()
	}
}

// emptyStmt parses: ;
func (p *Parser) emptyStmt() Stmt {
	p.want(_Semi)
	return &EmptyStatement{}
}

// blockStmt parses: { [stmts...] }
func (p *Parser) blockStmt() *BlockStatement {
	p.want(_Lbrace)

	b := &BlockStatement{Body: []Stmt{}}
	if p.tok.Kind != _Rbrace {
		b.Body = p.stmtList(_Rbrace)
	}

	p.want(_Rbrace)
	return b
}

// exprStmt parses: expr ;
func (p *Parser) exprStmt() Stmt {
	s := &ExpressionStatement{Expression: p.expr()}
	p.want(_Semi)
	return s
}

// ifStmt parses: if ( expr ) stmt [else stmt]
func (p *Parser) ifStmt() Stmt {
	s := &IfStatement{}

	p.want(_If)
	p.want(_Lparen)
	s.Test = p.expr()
	p.want(_Rparen)
	s.Consequent = p.stmt()

	if p.got(_Else) {
		s.Alternate = p.stmt()
	}
	return s
}

// iterationStmt dispatches to while, do-while and for.
func (p *Parser) iterationStmt() Stmt {
	switch p.tok.Kind {
	case _While:
		return p.whileStmt()
	case _Do:
		return p.doWhileStmt()
	default:
		return p.forStmt()
	}
}

// whileStmt parses: while ( expr ) stmt
func (p *Parser) whileStmt() Stmt {
	s := &WhileStatement{}

	p.want(_While)
	p.want(_Lparen)
	s.Test = p.expr()
	p.want(_Rparen)
	s.Body = p.stmt()

	return s
}

// doWhileStmt parses: do stmt while ( expr ) ;
func (p *Parser) doWhileStmt() Stmt {
	s := &DoWhileStatement{}

	p.want(_Do)
	s.Body = p.stmt()
	p.want(_While)
	p.want(_Lparen)
	s.Test = p.expr()
	p.want(_Rparen)
	p.want(_Semi)

	return s
}

// forStmt parses: for ( [init] ; [expr] ; [expr] ) stmt
func (p *Parser) forStmt() Stmt {
	s := &ForStatement{}

	p.want(_For)
	p.want(_Lparen)

	if p.tok.Kind != _Semi {
		s.Init = p.forInit()
	}
	p.want(_Semi)

	if p.tok.Kind != _Semi {
		s.Test = p.expr()
	}
	p.want(_Semi)

	if p.tok.Kind != _Rparen {
		s.Update = p.expr()
	}
	p.want(_Rparen)

	s.Body = p.stmt()
	return s
}

// forInit parses a let declaration list without its semicolon, or an
// expression.
func (p *Parser) forInit() Node {
	if p.tok.Kind == _Let {
		return p.varStmtInit()
	}
	return p.expr()
}

// varStmt parses: let decl {, decl} ;
func (p *Parser) varStmt() Stmt {
	s := p.varStmtInit()
	p.want(_Semi)
	return s
}

// varStmtInit parses: let decl {, decl}
func (p *Parser) varStmtInit() *VariableStatement {
	p.want(_Let)

	s := &VariableStatement{}
	for {
		s.Declarations = append(s.Declarations, p.varDecl())
		if !p.got(_Comma) {
			break
		}
	}
	return s
}

// varDecl parses: name [= assignExpr]
// The initializer is absent exactly when the next token is , or ;.
func (p *Parser) varDecl() *VariableDeclaration {
	d := &VariableDeclaration{ID: p.name()}

	if p.tok.Kind != _Comma && p.tok.Kind != _Semi {
		p.want(_SimpleAssign)
		d.Init = p.assignExpr()
	}
	return d
}

// funcDecl parses: def name ( [name {, name}] ) block
func (p *Parser) funcDecl() Stmt {
	d := &FunctionDeclaration{Params: []*Identifier{}}

	p.want(_Def)
	d.Name = p.name()

	p.want(_Lparen)
	if p.tok.Kind != _Rparen {
		for {
			d.Params = append(d.Params, p.name())
			if !p.got(_Comma) {
				break
			}
		}
	}
	p.want(_Rparen)

	d.Body = p.blockStmt()
	return d
}

// classDecl parses: class name [extends name] block
func (p *Parser) classDecl() Stmt {
	d := &ClassDeclaration{}

	p.want(_Class)
	d.ID = p.name()

	if p.got(_Extends) {
		d.SuperClass = p.name()
	}

	d.Body = p.blockStmt()
	return d
}

// returnStmt parses: return [expr] ;
func (p *Parser) returnStmt() Stmt {
	s := &ReturnStatement{}

	p.want(_Return)
	if p.tok.Kind != _Semi {
		s.Argument = p.expr()
	}
	p.want(_Semi)

	return s
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses an expression.
func (p *Parser) expr() Expr {
	return p.assignExpr()
}

// assignExpr parses: logicalOr [assignOp assignExpr]
//
// Assignment is right-associative: a = b = 1 is a = (b = 1). The chain is
// collected left to right and folded from the right.
func (p *Parser) assignExpr() Expr {
	type pending struct {
		op     Operator
		target Expr
	}
	var chain []pending

	x := p.logicalOrExpr()
	for p.tok.Kind.IsAssign() {
		if !isAssignTarget(x) {
			p.syntaxError(p.tok.Pos, "invalid left-hand side in assignment expression",
				"Identifier or MemberExpression", NodeType(x))
		}
		chain = append(chain, pending{op: Operator(p.tok.Lit), target: x})
		p.next()
		x = p.logicalOrExpr()
	}

	for i := len(chain) - 1; i >= 0; i-- {
		x = &AssignmentExpression{Operator: chain[i].op, Left: chain[i].target, Right: x}
	}
	return x
}

// isAssignTarget reports whether x may appear left of an assignment operator.
func isAssignTarget(x Expr) bool {
	switch x.(type) {
	case *Identifier, *MemberExpression:
		return true
	}
	return false
}

// binaryExpr parses a left-associative chain of operand productions joined by
// operators of kind k. Logical levels build LogicalExpression nodes, all
// others BinaryExpression nodes.
func (p *Parser) binaryExpr(k Kind, logical bool, operand func() Expr) Expr {
	x := operand()
	for p.tok.Kind == k {
		op := Operator(p.tok.Lit)
		p.next()
		y := operand()
		if logical {
			x = &LogicalExpression{Operator: op, Left: x, Right: y}
		} else {
			x = &BinaryExpression{Operator: op, Left: x, Right: y}
		}
	}
	return x
}

func (p *Parser) logicalOrExpr() Expr {
	return p.binaryExpr(_LogicalOr, true, p.logicalAndExpr)
}

func (p *Parser) logicalAndExpr() Expr {
	return p.binaryExpr(_LogicalAnd, true, p.equalityExpr)
}

func (p *Parser) equalityExpr() Expr {
	return p.binaryExpr(_EqualityOp, false, p.relationalExpr)
}

func (p *Parser) relationalExpr() Expr {
	return p.binaryExpr(_RelationalOp, false, p.additiveExpr)
}

func (p *Parser) additiveExpr() Expr {
	return p.binaryExpr(_AdditiveOp, false, p.multiplicativeExpr)
}

func (p *Parser) multiplicativeExpr() Expr {
	return p.binaryExpr(_MultiplicativeOp, false, p.unaryExpr)
}

// unaryExpr parses: {+ | - | !} lhsExpr
// Prefix operators nest right to left: --x is -(-x).
func (p *Parser) unaryExpr() Expr {
	var ops []Operator
	for p.tok.Kind == _AdditiveOp || p.tok.Kind == _LogicalNot {
		ops = append(ops, Operator(p.tok.Lit))
		p.next()
	}

	x := p.lhsExpr()
	for i := len(ops) - 1; i >= 0; i-- {
		x = &UnaryExpression{Operator: ops[i], Argument: x}
	}
	return x
}

// lhsExpr parses a member expression, optionally called, or a super call.
func (p *Parser) lhsExpr() Expr {
	if p.got(_Super) {
		return p.callExpr(&Super{})
	}

	x := p.memberExpr()
	if p.tok.Kind == _Lparen {
		return p.callExpr(x)
	}
	return x
}

// callExpr parses: callee args {args | .name | [expr]}
// Calls and accessors following a call nest left to right: f()().x.
func (p *Parser) callExpr(callee Expr) Expr {
	var x Expr = &CallExpression{Callee: callee, Arguments: p.arguments()}
	for {
		switch p.tok.Kind {
		case _Lparen:
			x = &CallExpression{Callee: x, Arguments: p.arguments()}
		case _Dot, _Lbrack:
			x = p.accessor(x)
		default:
			return x
		}
	}
}

// arguments parses: ( [assignExpr {, assignExpr}] )
func (p *Parser) arguments() []Expr {
	p.want(_Lparen)

	args := []Expr{}
	if p.tok.Kind != _Rparen {
		for {
			args = append(args, p.assignExpr())
			if !p.got(_Comma) {
				break
			}
		}
	}

	p.want(_Rparen)
	return args
}

// memberExpr parses: primary {.name | [expr]}
func (p *Parser) memberExpr() Expr {
	x := p.primaryExpr()
	for p.tok.Kind == _Dot || p.tok.Kind == _Lbrack {
		x = p.accessor(x)
	}
	return x
}

// accessor parses one .name or [expr] suffix applied to x.
func (p *Parser) accessor(x Expr) Expr {
	if p.got(_Dot) {
		return &MemberExpression{Computed: false, Object: x, Property: p.name()}
	}

	p.want(_Lbrack)
	prop := p.expr()
	p.want(_Rbrack)
	return &MemberExpression{Computed: true, Object: x, Property: prop}
}

// primaryExpr parses a literal, a parenthesized expression, a name, this,
// a new expression, or a super call.
func (p *Parser) primaryExpr() Expr {
	if p.tok.Kind.IsLiteral() {
		return p.literal()
	}

	switch p.tok.Kind {
	case _Lparen:
		return p.parenExpr()
	case _Name:
		return p.name()
	case _This:
		p.next()
		return &ThisExpression{}
	case _New:
		return p.newExpr()
	case _Super:
		return p.lhsExpr()
	}

	p.errorExpected("expression")
	return nil
}

// parenExpr parses: ( expr )
// No node is built for the parentheses themselves.
func (p *Parser) parenExpr() Expr {
	p.want(_Lparen)
	x := p.expr()
	p.want(_Rparen)
	return x
}

// newExpr parses: new memberExpr args
func (p *Parser) newExpr() Expr {
	p.want(_New)
	callee := p.memberExpr()
	return &NewExpression{Callee: callee, Arguments: p.arguments()}
}

// literal parses a number, string, boolean or null literal.
func (p *Parser) literal() Expr {
	var x Expr
	switch p.tok.Kind {
	case _Number:
		x = &NumericLiteral{Value: p.tok.Int}
	case _String:
		x = &StringLiteral{Value: p.tok.Lit}
	case _Boolean:
		x = &BooleanLiteral{Value: p.tok.Bool}
	case _Null:
		x = &NullLiteral{}
	default:
		p.syntaxError(p.tok.Pos, "unexpected literal production", "literal", describe(p.tok))
	}
	p.next()
	return x
}

// name parses an identifier.
func (p *Parser) name() *Identifier {
	t := p.want(_Name)
	return &Identifier{Name: t.Lit}
}
