package main

import (
	"errors"

	"github.com/mattn/calc"
)

// Exit codes are stable; scripts depend on them. Each error kind has its
// own code.
const (
	exitOK = iota
	exitOperandOverflow
	exitOperatorOverflow
	exitInvalidToken
	exitUnmatchedParen
	exitNoInput
	exitInsufficientOperands
	exitArgumentsRemaining
	exitDivideByZero
	exitIntegerOverflow
	exitUsage
)

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var e *calc.Error
	if !errors.As(err, &e) {
		return exitUsage
	}
	switch e.Kind {
	case calc.KindStackOverflow:
		if e.Stack == calc.OperandStack {
			return exitOperandOverflow
		}
		return exitOperatorOverflow
	case calc.KindInvalidToken:
		return exitInvalidToken
	case calc.KindUnmatchedParenthesis:
		return exitUnmatchedParen
	case calc.KindNoInput:
		return exitNoInput
	case calc.KindInsufficientOperands:
		return exitInsufficientOperands
	case calc.KindArgumentsRemaining:
		return exitArgumentsRemaining
	case calc.KindDivideByZero:
		return exitDivideByZero
	case calc.KindIntegerOverflow:
		return exitIntegerOverflow
	}
	return exitUsage
}
