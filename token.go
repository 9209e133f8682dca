package tinycalc

import "fmt"

type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenIdent
	TokenPlus
	TokenMinus
	TokenTimes
	TokenLparen
	TokenRparen
	TokenAssign
)

var tokenKindNames = [...]string{
	TokenNumber: "Number",
	TokenIdent:  "Ident",
	TokenPlus:   "Plus",
	TokenMinus:  "Minus",
	TokenTimes:  "Times",
	TokenLparen: "Lparen",
	TokenRparen: "Rparen",
	TokenAssign: "Assign",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is one classified lexical unit of an input line. Text holds the
// exact substring matched: the digit run for a Number, the letter run for
// an Ident, the single symbol otherwise.
type Token struct {
	Kind TokenKind
	Text string
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNumber, TokenIdent:
		return fmt.Sprintf("%v(%q)", t.Kind, t.Text)
	default:
		return t.Kind.String()
	}
}
