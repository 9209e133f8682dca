package tinycalc

// EvalString runs one line of source through the whole pipeline against e:
// tokenize, parse, evaluate. The first failing stage aborts the line.
func (e *Env) EvalString(source string) (int64, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return 0, err
	}
	expr, err := Parse(tokens)
	if err != nil {
		return 0, err
	}
	return e.Eval(expr)
}
