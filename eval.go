// Package calc evaluates infix integer expressions with an operand stack
// and an operator stack, folding operators as soon as precedence allows.
package calc

import (
	"context"
	"io"
	"log/slog"
)

// ParenMode selects how an open parenthesis still pending at end of input
// is handled.
type ParenMode int

const (
	// ParenStrict reports it as UnmatchedParenthesis.
	ParenStrict ParenMode = iota
	// ParenCompat folds it like a binary operator during the final
	// reduction, which fails with InsufficientOperands or InvalidToken.
	// Kept for compatibility with older calc releases.
	ParenCompat
)

func (m ParenMode) String() string {
	switch m {
	case ParenStrict:
		return "strict"
	case ParenCompat:
		return "compat"
	}
	return "unknown"
}

// Ties selects what happens when an incoming operator has the same
// priority as the pending one.
type Ties int

const (
	// TiesDefer pushes the incoming operator and leaves the pending one on
	// the stack, so a chain of equal priority operators is folded from the
	// right: 10 - 2 - 3 is 11.
	TiesDefer Ties = iota
	// TiesReduce folds the pending operator first, which gives ordinary
	// left-to-right grouping: 10 - 2 - 3 is 5.
	TiesReduce
)

func (t Ties) String() string {
	switch t {
	case TiesDefer:
		return "defer"
	case TiesReduce:
		return "reduce"
	}
	return "unknown"
}

// Options configures an Evaluator.
type Options struct {
	StackCapacity int
	Parens        ParenMode
	Overflow      Overflow
	Ties          Ties
	Logger        *slog.Logger
}

type Option func(*Options)

func WithStackCapacity(n int) Option {
	return func(o *Options) { o.StackCapacity = n }
}

func WithParens(m ParenMode) Option {
	return func(o *Options) { o.Parens = m }
}

func WithOverflow(m Overflow) Option {
	return func(o *Options) { o.Overflow = m }
}

func WithTies(t Ties) Option {
	return func(o *Options) { o.Ties = t }
}

// WithLogger sets the logger receiving reduction traces at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Evaluator folds token sequences into integers. It holds no state between
// calls and may be shared between goroutines.
type Evaluator struct {
	opts Options
}

func New(opts ...Option) *Evaluator {
	o := Options{
		StackCapacity: DefaultStackCapacity,
		Parens:        ParenStrict,
		Overflow:      OverflowWrap,
		Ties:          TiesDefer,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Evaluator{opts: o}
}

// Options returns the effective options.
func (e *Evaluator) Options() Options {
	return e.opts
}

var defaultEvaluator = New()

// Evaluate evaluates tokens with the default options.
func Evaluate(tokens []Token) (int64, error) {
	return defaultEvaluator.Evaluate(tokens)
}

// Evaluate computes the value of the infix expression in tokens.
func (e *Evaluator) Evaluate(tokens []Token) (int64, error) {
	if len(tokens) == 0 {
		return 0, &Error{Kind: KindNoInput}
	}

	r := &run{
		opts:      &e.opts,
		operands:  NewStack[int64](OperandStack, e.opts.StackCapacity),
		operators: NewStack[Kind](OperatorStack, e.opts.StackCapacity),
		debug:     e.opts.Logger.Enabled(context.Background(), slog.LevelDebug),
	}

	for _, t := range tokens {
		if err := r.take(t); err != nil {
			return 0, err
		}
		r.dump("token", slog.String("take", t.String()))
	}

	return r.finish()
}

// run is the state of a single evaluation.
type run struct {
	opts      *Options
	operands  *Stack[int64]
	operators *Stack[Kind]
	debug     bool
}

func (r *run) take(t Token) error {
	switch t.Kind {
	case Number:
		return r.operands.Push(t.Value)
	case LParen:
		return r.operators.Push(LParen)
	case Add, Sub, Mul, Div, RParen:
		for {
			top, ok := r.operators.Peek()
			if !ok || !r.outranks(top, t.Kind) {
				break
			}
			r.operators.Pop()
			if err := r.reduce(top); err != nil {
				return err
			}
		}
		if t.Kind == RParen {
			top, ok := r.operators.Pop()
			if !ok || top != LParen {
				return &Error{Kind: KindUnmatchedParenthesis, Op: RParen}
			}
			return nil
		}
		return r.operators.Push(t.Kind)
	}
	return &Error{Kind: KindInvalidToken, Op: t.Kind, Text: t.Text}
}

// outranks reports whether the pending operator top must be folded before
// next is pushed. LParen never outranks anything.
func (r *run) outranks(top, next Kind) bool {
	if top == LParen {
		return false
	}
	if r.opts.Ties == TiesReduce {
		return top.Priority() >= next.Priority()
	}
	return top.Priority() > next.Priority()
}

func (r *run) reduce(op Kind) error {
	if r.operands.Len() < 2 {
		return &Error{Kind: KindInsufficientOperands, Op: op}
	}
	a2, _ := r.operands.Pop()
	a1, _ := r.operands.Pop()

	n, err := apply(op, a1, a2, r.opts.Overflow)
	if err != nil {
		return err
	}
	if r.debug {
		r.opts.Logger.Debug("calc", "a1", a1, "op", op.String(), "a2", a2, "ans", n)
	}
	return r.operands.Push(n)
}

func (r *run) finish() (int64, error) {
	for {
		op, ok := r.operators.Pop()
		if !ok {
			break
		}
		if op == LParen && r.opts.Parens == ParenStrict {
			return 0, &Error{Kind: KindUnmatchedParenthesis, Op: LParen}
		}
		if err := r.reduce(op); err != nil {
			return 0, err
		}
	}
	r.dump("done")

	switch n := r.operands.Len(); {
	case n == 0:
		return 0, &Error{Kind: KindInsufficientOperands}
	case n > 1:
		return 0, &Error{Kind: KindArgumentsRemaining, Depth: n}
	}
	v, _ := r.operands.Pop()
	return v, nil
}

func (r *run) dump(msg string, attrs ...slog.Attr) {
	if !r.debug {
		return
	}
	ops := r.operators.Values()
	names := make([]string, len(ops))
	for i, k := range ops {
		names[i] = k.String()
	}
	attrs = append(attrs,
		slog.Any("operands", r.operands.Values()),
		slog.Any("operators", names),
	)
	r.opts.Logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
