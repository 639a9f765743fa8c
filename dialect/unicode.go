package dialect

import "github.com/mattn/calc"

func init() {
	Dialects["unicode"] = map[string]calc.Kind{
		"+": calc.Add,
		"-": calc.Sub,
		"−": calc.Sub, // U+2212
		"×": calc.Mul,
		"÷": calc.Div,
		"(": calc.LParen,
		")": calc.RParen,
	}
}
