package lib

import (
	"strconv"
	"strings"
)

type NodeKind int

const (
	NodeOperand NodeKind = iota
	NodeOperator
)

type associativity int

const (
	AssocLeft associativity = iota
	AssocRight
)

// Precedence values. A lower number binds tighter; grouping markers are
// never compared, they only sit on the operator stack as sentinels.
const (
	PrecedenceGroup    = 1
	PrecedenceUnary    = 2
	PrecedenceMultiply = 3
	PrecedenceAdd      = 4
)

// MathNode is either an operand (Value) or an operator (Symbol). Unary minus
// and binary minus share the symbol '-' and differ only in precedence and
// associativity.
type MathNode struct {
	Kind       NodeKind
	Assoc      associativity
	Precedence int
	Value      int64
	Symbol     byte
}

func operandNode(value int64) MathNode {
	return MathNode{Kind: NodeOperand, Assoc: AssocLeft, Value: value}
}

func operatorNode(sym byte, prec int, assoc associativity) MathNode {
	return MathNode{Kind: NodeOperator, Assoc: assoc, Precedence: prec, Symbol: sym}
}

func (n MathNode) isUnaryMinus() bool {
	return n.Kind == NodeOperator && n.Symbol == '-' && n.Precedence == PrecedenceUnary
}

func (n MathNode) isSymbol(sym byte) bool {
	return n.Kind == NodeOperator && n.Symbol == sym
}

func (n MathNode) String() string {
	if n.Kind == NodeOperand {
		return strconv.FormatInt(n.Value, 10)
	}
	if n.isUnaryMinus() {
		return "neg"
	}
	return string(n.Symbol)
}

// Expression is a flat node sequence, infix as built by the parser or postfix
// after ToPostfix.
type Expression []MathNode

func (e Expression) String() string {
	parts := make([]string, len(e))
	for i, n := range e {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}
