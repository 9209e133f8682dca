package tinycalc

import (
	"errors"
	"fmt"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			input: "12 + foo",
			want:  `[Number("12") Plus Ident("foo")]`,
		},
		{
			input: "x=5",
			want:  `[Ident("x") Assign Number("5")]`,
		},
		{
			input: "(1-2)*3",
			want:  `[Lparen Number("1") Minus Number("2") Rparen Times Number("3")]`,
		},
		{
			// A digit ends an identifier run without joining it.
			input: "abc123",
			want:  `[Ident("abc") Number("123")]`,
		},
		{
			input: "  \t  ",
			want:  `[]`,
		},
		{
			input: "",
			want:  `[]`,
		},
	}
	for _, test := range tests {
		t.Logf("%q", test.input)
		tokens, err := Tokenize(test.input)
		if err != nil {
			t.Errorf("Tokenize(%q): %v", test.input, err)
			continue
		}
		got := fmt.Sprint(tokens)
		if got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestTokenizeError(t *testing.T) {
	inputs := []string{
		"1 @ 2",
		"a?b",
		"x_1",
		"1.5",
		"3 / 4",
		"日本語",
	}
	for _, input := range inputs {
		_, err := Tokenize(input)
		var lexErr *LexError
		if !errors.As(err, &lexErr) {
			t.Errorf("want LexError for %q but got %v", input, err)
		}
	}
}

func TestTokenizeErrorChar(t *testing.T) {
	_, err := Tokenize("1 @ 2")
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("want LexError but got %v", err)
	}
	if lexErr.Char != '@' || lexErr.Pos != 2 {
		t.Errorf("want offending '@' at 2 but got %q at %d", lexErr.Char, lexErr.Pos)
	}
}
