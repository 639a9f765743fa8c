package main

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type printer struct {
	w io.Writer
	p *message.Printer // nil when no locale is set
}

func newPrinter(w io.Writer, tag language.Tag) *printer {
	pr := &printer{w: w}
	if tag != language.Und {
		pr.p = message.NewPrinter(tag)
	}
	return pr
}

func (pr *printer) answer(v int64) {
	if pr.p != nil {
		pr.p.Fprintf(pr.w, "ans = %d\n", v)
		return
	}
	fmt.Fprintf(pr.w, "ans = %d\n", v)
}
