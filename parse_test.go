package calc

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var shellSymbols = map[string]Kind{
	"+": Add,
	"-": Sub,
	"x": Mul,
	"/": Div,
	"[": LParen,
	"]": RParen,
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  Token
	}{
		{"0", Token{Kind: Number, Value: 0, Text: "0"}},
		{"42", Token{Kind: Number, Value: 42, Text: "42"}},
		{"-5", Token{Kind: Number, Value: -5, Text: "-5"}},
		{"+7", Token{Kind: Number, Value: 7, Text: "+7"}},
		{"-", Token{Kind: Sub, Text: "-"}},
		{"x", Token{Kind: Mul, Text: "x"}},
		{"[", Token{Kind: LParen, Text: "["}},
		{"]", Token{Kind: RParen, Text: "]"}},
	}
	tz := NewTokenizer(shellSymbols)
	for _, test := range tests {
		got, err := tz.Classify(test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("want %+v for %q but got %+v", test.want, test.input, got)
		}
	}
}

func TestClassifyInvalid(t *testing.T) {
	tz := NewTokenizer(shellSymbols)
	for _, input := range []string{"*", "(", "1.5", "abc", "99999999999999999999", ""} {
		_, err := tz.Classify(input)
		var e *Error
		if !errors.As(err, &e) || e.Kind != KindInvalidToken {
			t.Errorf("%q: want invalid token, got %v", input, err)
			continue
		}
		if e.Text != input {
			t.Errorf("want text %q but got %q", input, e.Text)
		}
	}
}

func TestNewTokenizerIgnoresNumberKind(t *testing.T) {
	tz := NewTokenizer(map[string]Kind{"one": Number, "plus": Add})
	if _, err := tz.Classify("one"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("want invalid token for a symbol bound to Number, got %v", err)
	}
	if got, err := tz.Classify("plus"); err != nil || got.Kind != Add {
		t.Errorf("want Add, got %v, %v", got, err)
	}
}

func TestScan(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{
			input: "",
			want:  []Token{},
		},
		{
			input: "1 + 2",
			want:  []Token{Num(1), Op(Add), Num(2)},
		},
		{
			input: "  [ 1\t+ 2 ]\nx 3\n",
			want:  []Token{Op(LParen), Num(1), Op(Add), Num(2), Op(RParen), Op(Mul), Num(3)},
		},
	}
	tz := NewTokenizer(shellSymbols)
	ignoreText := cmp.Comparer(func(a, b Token) bool {
		return a.Kind == b.Kind && a.Value == b.Value
	})
	for _, test := range tests {
		got, err := tz.Scan(strings.NewReader(test.input))
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got, ignoreText); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", test.input, diff)
		}
	}
}

func TestScanInvalid(t *testing.T) {
	tz := NewTokenizer(shellSymbols)
	_, err := tz.Scan(strings.NewReader("1 + two"))
	if got := err.Error(); got != `invalid token: "two"` {
		t.Errorf("unexpected error %q", got)
	}
}
