package tinycalc

import (
	"errors"
	"testing"
)

// Each pipeline stage surfaces its own error type through EvalString and
// the first failing stage wins.
func TestEvalStringStageErrors(t *testing.T) {
	env := NewEnv()

	_, err := env.EvalString("1 @ 2")
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Errorf("want LexError but got %v", err)
	}

	_, err = env.EvalString("1 + 2 + 3")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("want ParseError but got %v", err)
	}

	_, err = env.EvalString("nosuchthing")
	var unbound *UnboundVariableError
	if !errors.As(err, &unbound) {
		t.Errorf("want UnboundVariableError but got %v", err)
	}
}
