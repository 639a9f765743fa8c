package calc_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/mattn/anko/env"
	"github.com/mattn/anko/vm"

	"github.com/mattn/calc"
)

// randomExpr builds a random expression over + - * in which every binary
// operation is parenthesized, so the result does not depend on how ties
// are grouped.
func randomExpr(r *rand.Rand, depth int) ([]calc.Token, string) {
	if depth == 0 || r.Intn(3) == 0 {
		v := int64(r.Intn(21) - 10)
		return []calc.Token{calc.Num(v)}, fmt.Sprintf("(%d)", v)
	}
	lt, ls := randomExpr(r, depth-1)
	rt, rs := randomExpr(r, depth-1)
	ops := []calc.Kind{calc.Add, calc.Sub, calc.Mul}
	op := ops[r.Intn(len(ops))]

	tokens := []calc.Token{calc.Op(calc.LParen)}
	tokens = append(tokens, lt...)
	tokens = append(tokens, calc.Op(op))
	tokens = append(tokens, rt...)
	tokens = append(tokens, calc.Op(calc.RParen))
	return tokens, "(" + ls + " " + op.String() + " " + rs + ")"
}

func TestOracleAnko(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		tokens, script := randomExpr(r, 4)

		v, err := vm.Execute(env.NewEnv(), nil, script)
		if err != nil {
			t.Fatalf("anko %s: %v", script, err)
		}
		want, ok := v.(int64)
		if !ok {
			t.Fatalf("anko %s: unexpected result %T", script, v)
		}

		for _, ties := range []calc.Ties{calc.TiesDefer, calc.TiesReduce} {
			got, err := calc.New(calc.WithTies(ties)).Evaluate(tokens)
			if err != nil {
				t.Fatalf("%s: %v", script, err)
			}
			if got != want {
				t.Errorf("ties %v: want %d for %s but got %d", ties, want, strings.TrimSpace(script), got)
			}
		}
	}
}

func TestOracleAnkoPrecedence(t *testing.T) {
	tests := []struct {
		script string
		tokens []calc.Token
	}{
		{"1 + 2 * 3", toks(n(1), add, n(2), mul, n(3))},
		{"(1 + 2) * 3", toks(lp, n(1), add, n(2), rp, mul, n(3))},
		{"2 * 3 + 4 * 5", toks(n(2), mul, n(3), add, n(4), mul, n(5))},
		{"1 + 2 - 3 * 4", toks(n(1), add, n(2), sub, n(3), mul, n(4))},
	}
	for _, test := range tests {
		v, err := vm.Execute(env.NewEnv(), nil, test.script)
		if err != nil {
			t.Fatalf("anko %s: %v", test.script, err)
		}
		got, err := calc.Evaluate(test.tokens)
		if err != nil {
			t.Fatal(err)
		}
		if want, ok := v.(int64); !ok || got != want {
			t.Errorf("want %v for %s but got %d", v, test.script, got)
		}
	}
}
