package dialect

import "github.com/mattn/calc"

// The shell dialect avoids characters the shell would expand: x for
// multiplication, brackets for grouping.
func init() {
	Dialects["shell"] = map[string]calc.Kind{
		"+": calc.Add,
		"-": calc.Sub,
		"x": calc.Mul,
		"/": calc.Div,
		"[": calc.LParen,
		"]": calc.RParen,
	}
}
