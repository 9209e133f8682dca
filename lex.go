package tinycalc

import (
	"fmt"
	"unicode"
)

// LexError reports a character that cannot start any token.
type LexError struct {
	Char rune
	Pos  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("cannot tokenize %q at offset %d", e.Char, e.Pos)
}

var symbolKinds = map[rune]TokenKind{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenTimes,
	'(': TokenLparen,
	')': TokenRparen,
	'=': TokenAssign,
}

func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isASCIIAlpha(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// Tokenize scans one line of source into its token sequence. Whitespace
// separates tokens and is otherwise dropped. Scanning is all-or-nothing:
// the first unrecognized character fails the whole line.
func Tokenize(source string) ([]Token, error) {
	var tokens []Token
	runes := []rune(source)
	n := 0
	for n < len(runes) {
		r := runes[n]
		switch {
		case unicode.IsSpace(r):
			n++
		case isASCIIDigit(r):
			start := n
			for n < len(runes) && isASCIIDigit(runes[n]) {
				n++
			}
			tokens = append(tokens, Token{Kind: TokenNumber, Text: string(runes[start:n])})
		case isASCIIAlpha(r):
			start := n
			for n < len(runes) && isASCIIAlpha(runes[n]) {
				n++
			}
			tokens = append(tokens, Token{Kind: TokenIdent, Text: string(runes[start:n])})
		default:
			kind, ok := symbolKinds[r]
			if !ok {
				return nil, &LexError{Char: r, Pos: n}
			}
			tokens = append(tokens, Token{Kind: kind, Text: string(r)})
			n++
		}
	}
	return tokens, nil
}
