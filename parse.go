package calc

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"unicode"
)

// Tokenizer classifies words into tokens using a symbol table.
type Tokenizer struct {
	symbols map[string]Kind
}

// NewTokenizer returns a tokenizer for the given symbol table. Entries
// mapping to Number are ignored.
func NewTokenizer(symbols map[string]Kind) *Tokenizer {
	m := make(map[string]Kind, len(symbols))
	for s, k := range symbols {
		if k.IsOperator() {
			m[s] = k
		}
	}
	return &Tokenizer{symbols: m}
}

// Classify turns a single word into a token. Anything that parses as a
// base-10 int64 is a number, so "-5" is a literal rather than unary minus.
func (tz *Tokenizer) Classify(word string) (Token, error) {
	if n, err := strconv.ParseInt(word, 10, 64); err == nil {
		return Token{Kind: Number, Value: n, Text: word}, nil
	}
	if k, ok := tz.symbols[word]; ok {
		return Token{Kind: k, Text: word}, nil
	}
	return Token{}, &Error{Kind: KindInvalidToken, Text: word}
}

// Tokenize classifies each word in order.
func (tz *Tokenizer) Tokenize(words []string) ([]Token, error) {
	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		t, err := tz.Classify(w)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

// Scan reads whitespace separated words from r until EOF and classifies
// them.
func (tz *Tokenizer) Scan(r io.Reader) ([]Token, error) {
	s := &scanner{buf: bufio.NewReader(r)}
	var words []string
	for {
		w, err := s.word()
		if err != nil {
			return nil, err
		}
		if w == "" {
			break
		}
		words = append(words, w)
	}
	return tz.Tokenize(words)
}

type scanner struct {
	buf *bufio.Reader
}

func (s *scanner) readRune() (rune, error) {
	r, _, err := s.buf.ReadRune()
	return r, err
}

func (s *scanner) skipWhite() error {
	for {
		r, err := s.readRune()
		if err != nil {
			return err
		}
		if !unicode.IsSpace(r) {
			return s.buf.UnreadRune()
		}
	}
}

// word returns the next word, or "" at end of input.
func (s *scanner) word() (string, error) {
	if err := s.skipWhite(); err != nil {
		if err == io.EOF {
			return "", nil
		}
		return "", err
	}
	var buf bytes.Buffer
	for {
		r, err := s.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			break
		}
		buf.WriteRune(r)
	}
	return buf.String(), nil
}
