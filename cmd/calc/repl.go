package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

func (a *app) repl(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		tokens, err := a.tokenizer.Scan(strings.NewReader(line))
		if err == nil {
			err = a.eval(tokens)
		}
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
	fmt.Fprintln(out)
	return scanner.Err()
}
