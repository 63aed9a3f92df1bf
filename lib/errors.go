package lib

import (
	"errors"
	"fmt"
)

// ErrorKind is the fixed set of user facing failures. Each kind is itself an
// error so callers can write errors.Is(err, lib.DivisionByZero).
type ErrorKind int

const (
	IllegalSymbol ErrorKind = iota
	ExpectedOperator
	ExpectedOperand
	UnbalancedParens
	DivisionByZero
)

var errorMessages = map[ErrorKind]string{
	IllegalSymbol:    "Illegal symbol in input",
	ExpectedOperator: "Expected an operator",
	ExpectedOperand:  "Expected an integer",
	UnbalancedParens: "Unbalanced parentheses",
	DivisionByZero:   "Division by zero",
}

var errorNames = map[ErrorKind]string{
	IllegalSymbol:    "IllegalSymbol",
	ExpectedOperator: "ExpectedOperator",
	ExpectedOperand:  "ExpectedOperand",
	UnbalancedParens: "UnbalancedParens",
	DivisionByZero:   "DivisionByZero",
}

func (k ErrorKind) Error() string {
	if msg, ok := errorMessages[k]; ok {
		return msg
	}
	return fmt.Sprintf("Unknown error %d", int(k))
}

func (k ErrorKind) String() string {
	if name, ok := errorNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a failure tied to the token where it was detected.
type Error struct {
	Kind  ErrorKind
	Token Token
}

func (e *Error) Error() string {
	if e.Kind == IllegalSymbol {
		return fmt.Sprintf("%s '%s'", e.Kind.Error(), e.Token.Lexeme)
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// KindOf reports the ErrorKind behind err, if any.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	var k ErrorKind
	if errors.As(err, &k) {
		return k, true
	}
	return 0, false
}
