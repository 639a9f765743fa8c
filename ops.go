package calc

import "math"

// Overflow selects what happens when an operation leaves the int64 range.
type Overflow int

const (
	// OverflowWrap wraps around in two's complement, as Go arithmetic does.
	// MinInt64 / -1 yields MinInt64.
	OverflowWrap Overflow = iota
	// OverflowCheck fails with IntegerOverflow instead.
	OverflowCheck
)

func (o Overflow) String() string {
	switch o {
	case OverflowWrap:
		return "wrap"
	case OverflowCheck:
		return "check"
	}
	return "unknown"
}

// apply folds a1 op a2. a1 is the left operand.
func apply(op Kind, a1, a2 int64, mode Overflow) (int64, error) {
	var n int64
	overflow := false

	switch op {
	case Add:
		n = a1 + a2
		overflow = (a1^n)&(a2^n) < 0
	case Sub:
		n = a1 - a2
		overflow = (a1^a2)&(a1^n) < 0
	case Mul:
		n = a1 * a2
		if a1 != 0 {
			overflow = n/a1 != a2 || (a1 == -1 && a2 == math.MinInt64)
		}
	case Div:
		if a2 == 0 {
			return 0, &Error{Kind: KindDivideByZero, Op: op, A1: a1, A2: a2}
		}
		// truncates toward zero
		n = a1 / a2
		overflow = a1 == math.MinInt64 && a2 == -1
	default:
		return 0, &Error{Kind: KindInvalidToken, Op: op}
	}

	if overflow && mode == OverflowCheck {
		return 0, &Error{Kind: KindIntegerOverflow, Op: op, A1: a1, A2: a2}
	}
	return n, nil
}
