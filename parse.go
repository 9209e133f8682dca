package tinycalc

import (
	"fmt"
	"strconv"
)

// ParseError reports a malformed token sequence.
type ParseError struct {
	msg string
}

func (e *ParseError) Error() string { return e.msg }

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{msg: fmt.Sprintf(format, args...)}
}

type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpMul:
		return "Mul"
	}
	return fmt.Sprintf("BinaryOp(%d)", int(op))
}

// Expr is one node of a parsed expression tree. The variants are
// NumberExpr, VariableExpr, AssignExpr and BinaryExpr; each node owns its
// children outright. A tree is built once per input line and discarded
// after evaluation.
type Expr interface {
	fmt.Stringer
	exprNode()
}

// NumberExpr is an integer literal.
type NumberExpr struct {
	Value int64
}

// VariableExpr reads a variable by name.
type VariableExpr struct {
	Name string
}

// AssignExpr binds the evaluated Value to Target. Target must turn out to
// be a VariableExpr; that is checked during evaluation, not here.
type AssignExpr struct {
	Target Expr
	Value  Expr
}

// BinaryExpr applies Op to its two operands.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (*NumberExpr) exprNode()   {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}
func (*BinaryExpr) exprNode()   {}

func (e *NumberExpr) String() string   { return fmt.Sprintf("Number(%d)", e.Value) }
func (e *VariableExpr) String() string { return fmt.Sprintf("Variable(%q)", e.Name) }
func (e *AssignExpr) String() string   { return fmt.Sprintf("Assign(%v, %v)", e.Target, e.Value) }
func (e *BinaryExpr) String() string   { return fmt.Sprintf("%v(%v, %v)", e.Op, e.Left, e.Right) }

// maxDepth caps expression nesting so adversarial input becomes a parse
// error instead of exhausting the call stack.
const maxDepth = 512

// Parser walks a token sequence with one token of lookahead.
type Parser struct {
	tokens []Token
	pos    int
	depth  int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// accept advances past the next token when it has the wanted kind.
func (p *Parser) accept(kind TokenKind) bool {
	if p.pos < len(p.tokens) && p.tokens[p.pos].Kind == kind {
		p.pos++
		return true
	}
	return false
}

// last returns the most recently consumed token.
func (p *Parser) last() Token {
	return p.tokens[p.pos-1]
}

func (p *Parser) atEnd() bool {
	return p.pos == len(p.tokens)
}

// parseTerm handles the smallest parseable units: a number literal, a
// variable reference, or a parenthesized expression.
func (p *Parser) parseTerm() (Expr, error) {
	if p.accept(TokenNumber) {
		tok := p.last()
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, parseErrorf("number out of range: %s", tok.Text)
		}
		return &NumberExpr{Value: v}, nil
	}
	if p.accept(TokenIdent) {
		return &VariableExpr{Name: p.last().Text}, nil
	}
	if p.accept(TokenLparen) {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if !p.accept(TokenRparen) {
			return nil, parseErrorf("( not closed by a ). Found ( %v", e)
		}
		return e, nil
	}
	if p.pos < len(p.tokens) {
		return nil, parseErrorf("cannot process token %v", p.tokens[p.pos])
	}
	return nil, parseErrorf("unexpected end of input")
}

// parseExpression parses one term, then at most one operator. A +, - or *
// takes exactly one more term; there is no chaining and no precedence. An
// = takes a full expression on the right, so chained assignment like
// a = b = 3 nests to the right.
func (p *Parser) parseExpression() (Expr, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxDepth {
		return nil, parseErrorf("expression nested deeper than %d levels", maxDepth)
	}

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	ops := []struct {
		kind TokenKind
		op   BinaryOp
	}{
		{TokenPlus, OpAdd},
		{TokenMinus, OpSub},
		{TokenTimes, OpMul},
	}
	for _, o := range ops {
		if p.accept(o.kind) {
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			return &BinaryExpr{Op: o.op, Left: left, Right: right}, nil
		}
	}
	if p.accept(TokenAssign) {
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &AssignExpr{Target: left, Value: value}, nil
	}
	return left, nil
}

// Parse builds the expression tree for one token sequence. Every token
// must be consumed; leftovers fail with the last accepted token named, so
// 1 + 2 + 3 is an error rather than a silently extended grammar.
func Parse(tokens []Token) (Expr, error) {
	p := NewParser(tokens)
	e, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, parseErrorf("unprocessed tokens remain, last processed: %v", p.last())
	}
	return e, nil
}
