package calc

import (
	"fmt"
	"strconv"
)

// Kind is the closed set of token kinds the evaluator understands.
type Kind int

const (
	Number Kind = iota
	Add
	Sub
	Mul
	Div
	LParen
	RParen
)

var kindNames = [...]string{
	Number: "number",
	Add:    "+",
	Sub:    "-",
	Mul:    "*",
	Div:    "/",
	LParen: "(",
	RParen: ")",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Priority ranks operators for reduction. LParen ranks below every real
// operator so it is never folded by the precedence rule; RParen ranks 0
// so it forces reduction down to the matching LParen.
func (k Kind) Priority() int {
	switch k {
	case Add, Sub:
		return 1
	case Mul, Div:
		return 2
	case LParen:
		return -1
	case RParen:
		return 0
	default:
		return -1
	}
}

// IsOperator reports whether k is one of the operator or parenthesis kinds.
func (k Kind) IsOperator() bool {
	switch k {
	case Add, Sub, Mul, Div, LParen, RParen:
		return true
	}
	return false
}

// ParseKind maps a kind name as used in config files ("add", "lparen", ...)
// to its Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "add", "+":
		return Add, nil
	case "sub", "-":
		return Sub, nil
	case "mul", "*":
		return Mul, nil
	case "div", "/":
		return Div, nil
	case "lparen", "(":
		return LParen, nil
	case "rparen", ")":
		return RParen, nil
	}
	return Number, fmt.Errorf("unknown token kind: %q", s)
}

// Token is a classified unit of an expression.
type Token struct {
	Kind  Kind
	Value int64  // only for Number
	Text  string // source symbol, may be empty
}

// Num returns a Number token.
func Num(v int64) Token {
	return Token{Kind: Number, Value: v}
}

// Op returns an operator token.
func Op(k Kind) Token {
	return Token{Kind: k}
}

func (t Token) String() string {
	if t.Kind == Number {
		return strconv.FormatInt(t.Value, 10)
	}
	if t.Text != "" {
		return t.Text
	}
	return t.Kind.String()
}
