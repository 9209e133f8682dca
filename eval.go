package tinycalc

import (
	"fmt"
	"math"
)

// EvalError reports an expression that cannot be evaluated, such as an
// assignment whose target is not a variable reference.
type EvalError struct {
	msg string
}

func (e *EvalError) Error() string { return e.msg }

// UnboundVariableError reports a read of a name with no binding.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %q", e.Name)
}

// OverflowError reports an arithmetic result outside the int64 range.
type OverflowError struct {
	Op    BinaryOp
	Left  int64
	Right int64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%v(%d, %d) overflows", e.Op, e.Left, e.Right)
}

// Env maps variable names to their last-assigned values. One Env persists
// across every line of a session; bindings accumulate and are never
// dropped. It is not safe for concurrent use.
type Env struct {
	vars map[string]int64
}

func NewEnv() *Env {
	return &Env{vars: make(map[string]int64)}
}

// Assign inserts or overwrites the binding for name.
func (e *Env) Assign(name string, value int64) {
	e.vars[name] = value
}

// Lookup returns the current binding for name.
func (e *Env) Lookup(name string) (int64, error) {
	v, ok := e.vars[name]
	if !ok {
		return 0, &UnboundVariableError{Name: name}
	}
	return v, nil
}

// Eval walks expr, reading and writing bindings in e. Children are
// evaluated before their parent combines them. Assignments that completed
// before a later failure in the same tree stay in effect.
func (e *Env) Eval(expr Expr) (int64, error) {
	switch x := expr.(type) {
	case *NumberExpr:
		return x.Value, nil
	case *VariableExpr:
		return e.Lookup(x.Name)
	case *AssignExpr:
		target, ok := x.Target.(*VariableExpr)
		if !ok {
			return 0, &EvalError{msg: fmt.Sprintf("cannot assign to %v", x.Target)}
		}
		v, err := e.Eval(x.Value)
		if err != nil {
			return 0, err
		}
		e.Assign(target.Name, v)
		return e.Lookup(target.Name)
	case *BinaryExpr:
		l, err := e.Eval(x.Left)
		if err != nil {
			return 0, err
		}
		r, err := e.Eval(x.Right)
		if err != nil {
			return 0, err
		}
		return applyBinary(x.Op, l, r)
	}
	return 0, &EvalError{msg: fmt.Sprintf("cannot evaluate %v", expr)}
}

func applyBinary(op BinaryOp, l, r int64) (int64, error) {
	switch op {
	case OpAdd:
		v := l + r
		if (v > l) != (r > 0) {
			return 0, &OverflowError{Op: op, Left: l, Right: r}
		}
		return v, nil
	case OpSub:
		v := l - r
		if (v < l) != (r > 0) {
			return 0, &OverflowError{Op: op, Left: l, Right: r}
		}
		return v, nil
	case OpMul:
		if l == 0 || r == 0 {
			return 0, nil
		}
		// MinInt64 * -1 has no int64 representation and l*r/l would
		// trap, so it is checked before the division probe.
		if (l == -1 && r == math.MinInt64) || (r == -1 && l == math.MinInt64) {
			return 0, &OverflowError{Op: op, Left: l, Right: r}
		}
		v := l * r
		if v/l != r {
			return 0, &OverflowError{Op: op, Left: l, Right: r}
		}
		return v, nil
	}
	return 0, &EvalError{msg: fmt.Sprintf("unknown operator %v", op)}
}
