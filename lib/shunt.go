package lib

// ToPostfix reorders an infix Expression produced by Parse into postfix
// order with the shunting-yard algorithm. The input must already be
// structurally valid; it is not checked again.
func ToPostfix(infix Expression) Expression {
	out := make(Expression, 0, len(infix))
	operators := make([]MathNode, 0, len(infix))

	for _, o1 := range infix {
		switch {
		case o1.Kind == NodeOperand:
			out = append(out, o1)

		case o1.isSymbol('('):
			operators = append(operators, o1)

		case o1.isSymbol(')'):
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				operators = operators[:len(operators)-1]
				if top.isSymbol('(') {
					break
				}
				out = append(out, top)
			}

		default:
			for len(operators) > 0 {
				o2 := operators[len(operators)-1]
				if o2.isSymbol('(') || !reducesBefore(o2, o1) {
					break
				}
				out = append(out, o2)
				operators = operators[:len(operators)-1]
			}
			operators = append(operators, o1)
		}
	}

	for len(operators) > 0 {
		out = append(out, operators[len(operators)-1])
		operators = operators[:len(operators)-1]
	}

	return out
}

// reducesBefore reports whether stacked operator top must be emitted before
// incoming operator op is pushed.
func reducesBefore(top MathNode, op MathNode) bool {
	if top.Precedence < op.Precedence {
		return true
	}
	return top.Precedence == op.Precedence && op.Assoc == AssocLeft
}
