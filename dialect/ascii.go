package dialect

import "github.com/mattn/calc"

func init() {
	Dialects["ascii"] = map[string]calc.Kind{
		"+": calc.Add,
		"-": calc.Sub,
		"*": calc.Mul,
		"/": calc.Div,
		"(": calc.LParen,
		")": calc.RParen,
	}
}
