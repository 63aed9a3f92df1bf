package lib

import "fmt"

// EvalPostfix computes a postfix Expression with a single value stack.
// Arithmetic is int64 and wraps on overflow; division truncates toward zero.
//
// A malformed postfix sequence means Parse or ToPostfix is broken, so it
// panics instead of returning an error.
func EvalPostfix(postfix Expression) (int64, error) {
	values := make([]int64, 0, len(postfix))

	pop := func() int64 {
		if len(values) == 0 {
			panic(fmt.Sprintf("calc: value stack underflow evaluating %q", postfix.String()))
		}
		v := values[len(values)-1]
		values = values[:len(values)-1]
		return v
	}

	for _, n := range postfix {
		if n.Kind == NodeOperand {
			values = append(values, n.Value)
			continue
		}

		if n.isUnaryMinus() {
			values = append(values, -pop())
			continue
		}

		b := pop()
		a := pop()
		var result int64
		switch n.Symbol {
		case '+':
			result = a + b
		case '-':
			result = a - b
		case '*':
			result = a * b
		case '/':
			if b == 0 {
				return 0, DivisionByZero
			}
			result = a / b
		default:
			panic(fmt.Sprintf("calc: unexpected operator %q in postfix expression", n.Symbol))
		}
		values = append(values, result)
	}

	if len(values) != 1 {
		panic(fmt.Sprintf("calc: %d values left evaluating %q", len(values), postfix.String()))
	}
	return values[0], nil
}
