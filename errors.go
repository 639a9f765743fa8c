package calc

import (
	"errors"
	"fmt"
)

// ErrorKind classifies evaluation failures.
type ErrorKind int

const (
	KindStackOverflow ErrorKind = iota + 1
	KindInsufficientOperands
	KindUnmatchedParenthesis
	KindInvalidToken
	KindDivideByZero
	KindArgumentsRemaining
	KindNoInput
	KindIntegerOverflow
)

func (k ErrorKind) String() string {
	switch k {
	case KindStackOverflow:
		return "stack overflow"
	case KindInsufficientOperands:
		return "insufficient operands"
	case KindUnmatchedParenthesis:
		return "unmatched parenthesis"
	case KindInvalidToken:
		return "invalid token"
	case KindDivideByZero:
		return "divide by zero"
	case KindArgumentsRemaining:
		return "arguments remaining"
	case KindNoInput:
		return "no input"
	case KindIntegerOverflow:
		return "integer overflow"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// StackName identifies which of the two stacks a failure concerns.
type StackName string

const (
	OperandStack  StackName = "operand"
	OperatorStack StackName = "operator"
)

// Sentinels for errors.Is. Any *Error matches the sentinel of its Kind.
var (
	ErrStackOverflow        = errors.New("stack overflow")
	ErrInsufficientOperands = errors.New("insufficient operands")
	ErrUnmatchedParenthesis = errors.New("unmatched parenthesis")
	ErrInvalidToken         = errors.New("invalid token")
	ErrDivideByZero         = errors.New("divide by zero")
	ErrArgumentsRemaining   = errors.New("arguments remaining")
	ErrNoInput              = errors.New("no input")
	ErrIntegerOverflow      = errors.New("integer overflow")
)

var sentinels = map[ErrorKind]error{
	KindStackOverflow:        ErrStackOverflow,
	KindInsufficientOperands: ErrInsufficientOperands,
	KindUnmatchedParenthesis: ErrUnmatchedParenthesis,
	KindInvalidToken:         ErrInvalidToken,
	KindDivideByZero:         ErrDivideByZero,
	KindArgumentsRemaining:   ErrArgumentsRemaining,
	KindNoInput:              ErrNoInput,
	KindIntegerOverflow:      ErrIntegerOverflow,
}

// Error is the failure returned by the tokenizer and the evaluator. Only
// the fields relevant to Kind are set.
type Error struct {
	Kind  ErrorKind
	Stack StackName // StackOverflow
	Op    Kind      // operator involved, or the unmatched parenthesis
	A1    int64     // DivideByZero, IntegerOverflow
	A2    int64
	Text  string // InvalidToken: offending word
	Depth int    // StackOverflow: capacity; ArgumentsRemaining: operands left
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStackOverflow:
		return fmt.Sprintf("stack overflow: %s stack exceeds %d", e.Stack, e.Depth)
	case KindDivideByZero:
		return fmt.Sprintf("divide by zero: %d / %d", e.A1, e.A2)
	case KindIntegerOverflow:
		return fmt.Sprintf("integer overflow: %d %v %d", e.A1, e.Op, e.A2)
	case KindInvalidToken:
		if e.Text != "" {
			return fmt.Sprintf("invalid token: %q", e.Text)
		}
		return fmt.Sprintf("invalid token: %v", e.Op)
	case KindUnmatchedParenthesis:
		if e.Op == LParen {
			return "unmatched parenthesis: ( is never closed"
		}
		return "unmatched parenthesis: ) has no matching ("
	case KindArgumentsRemaining:
		return fmt.Sprintf("arguments remaining: %d values left on operand stack", e.Depth)
	}
	return e.Kind.String()
}

func (e *Error) Is(target error) bool {
	return sentinels[e.Kind] == target
}

// KindOf returns the ErrorKind of err, or 0 if err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
