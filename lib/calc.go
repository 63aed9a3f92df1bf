package lib

// Evaluate runs the whole pipeline on one expression. Every call builds its
// own token stream and stacks, so concurrent calls are safe.
func Evaluate(input string) (int64, error) {
	postfix, err := Compile(input)
	if err != nil {
		return 0, err
	}
	return EvalPostfix(postfix)
}

// Compile parses input and returns it in postfix order.
func Compile(input string) (Expression, error) {
	infix, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return ToPostfix(infix), nil
}
