package lib

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvalPostfix(t *testing.T) {
	postfix := Expression{
		operandNode(3),
		operandNode(4),
		operandNode(2),
		operatorNode('*', PrecedenceMultiply, AssocLeft),
		operatorNode('+', PrecedenceAdd, AssocLeft),
	}
	result, err := EvalPostfix(postfix)
	require.NoError(t, err)
	require.Equal(t, int64(11), result)
}

func TestEvalPostfixOperandOrder(t *testing.T) {
	result, err := EvalPostfix(Expression{
		operandNode(10),
		operandNode(4),
		operatorNode('-', PrecedenceAdd, AssocLeft),
	})
	require.NoError(t, err)
	require.Equal(t, int64(6), result)

	result, err = EvalPostfix(Expression{
		operandNode(20),
		operandNode(5),
		operatorNode('/', PrecedenceMultiply, AssocLeft),
	})
	require.NoError(t, err)
	require.Equal(t, int64(4), result)
}

func TestEvalPostfixUnaryMinus(t *testing.T) {
	result, err := EvalPostfix(Expression{
		operandNode(5),
		operatorNode('-', PrecedenceUnary, AssocRight),
	})
	require.NoError(t, err)
	require.Equal(t, int64(-5), result)
}

func TestEvalPostfixDivisionByZero(t *testing.T) {
	_, err := EvalPostfix(Expression{
		operandNode(10),
		operandNode(0),
		operatorNode('/', PrecedenceMultiply, AssocLeft),
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, DivisionByZero))
	require.Equal(t, "Division by zero", err.Error())
}

func TestEvalPostfixTruncates(t *testing.T) {
	result, err := EvalPostfix(Expression{
		operandNode(-7),
		operandNode(2),
		operatorNode('/', PrecedenceMultiply, AssocLeft),
	})
	require.NoError(t, err)
	require.Equal(t, int64(-3), result)
}

func TestEvalPostfixWraps(t *testing.T) {
	result, err := EvalPostfix(Expression{
		operandNode(math.MaxInt64),
		operandNode(1),
		operatorNode('+', PrecedenceAdd, AssocLeft),
	})
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), result)

	result, err = EvalPostfix(Expression{
		operandNode(math.MinInt64),
		operandNode(1),
		operatorNode('-', PrecedenceUnary, AssocRight),
		operatorNode('/', PrecedenceMultiply, AssocLeft),
	})
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), result)
}

func TestEvalPostfixUnderflowPanics(t *testing.T) {
	require.Panics(t, func() {
		_, _ = EvalPostfix(Expression{
			operandNode(1),
			operatorNode('+', PrecedenceAdd, AssocLeft),
		})
	})
	require.Panics(t, func() {
		_, _ = EvalPostfix(Expression{})
	})
}

func TestEvalPostfixLeftoverPanics(t *testing.T) {
	require.Panics(t, func() {
		_, _ = EvalPostfix(Expression{operandNode(1), operandNode(2)})
	})
}

func TestEvalPostfixUnknownOperatorPanics(t *testing.T) {
	require.Panics(t, func() {
		_, _ = EvalPostfix(Expression{
			operandNode(1),
			operandNode(2),
			operatorNode('%', PrecedenceMultiply, AssocLeft),
		})
	})
}
