package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mattn/calc"
	"github.com/mattn/calc/internal/config"
)

type flags struct {
	config   string
	capacity int
	parens   string
	overflow string
	ties     string
	dialects []string
	locale   string
	debug    bool
}

// app is what a command needs once flags and config are resolved.
type app struct {
	cfg       *config.Config
	tokenizer *calc.Tokenizer
	evaluator *calc.Evaluator
	out       *printer
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:   "calc [flags] <token>...",
		Short: "Integer calculator for infix expressions given as separate words",
		Long: `calc evaluates an infix integer expression whose tokens are passed as
separate arguments, for example:

  calc [ [ 1 + 2 ] x 3 ] - 4

Operators are + - x / with [ ] for grouping (the shell dialect) or
+ - * / ( ) when quoted (the ascii dialect). With no arguments calc reads
the expression from standard input, or starts a prompt when standard
input is a terminal. Put -- before an expression that starts with a
negative number.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := f.load(cmd, stdout, stderr)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				tokens, err := a.tokenizer.Tokenize(args)
				if err != nil {
					return err
				}
				return a.eval(tokens)
			}
			if isTerminal(stdin) {
				return a.repl(stdin, stdout)
			}
			tokens, err := a.tokenizer.Scan(stdin)
			if err != nil {
				return err
			}
			return a.eval(tokens)
		},
	}
	// Stop at the first expression word so "-5" is not taken for a flag.
	root.Flags().SetInterspersed(false)

	pf := root.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "YAML configuration file")
	pf.IntVar(&f.capacity, "capacity", calc.DefaultStackCapacity, "maximum depth of each stack")
	pf.StringVar(&f.parens, "parens", "strict", "unclosed ( at end of input: strict or compat")
	pf.StringVar(&f.overflow, "overflow", "wrap", "int64 overflow: wrap or check")
	pf.StringVar(&f.ties, "ties", "defer", "equal priority operators: defer (right grouping, the default) or reduce (left to right)")
	pf.StringSliceVar(&f.dialects, "dialect", nil, "symbol dialects to accept (shell, ascii, unicode)")
	pf.StringVar(&f.locale, "locale", "", "BCP 47 locale used to group digits of the result")
	pf.BoolVar(&f.debug, "debug", false, "trace every reduction on stderr")

	root.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "Read expressions line by line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := f.load(cmd, stdout, stderr)
			if err != nil {
				return err
			}
			return a.repl(stdin, stdout)
		},
	})
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root
}

// load reads the config file and applies the flags given on the command
// line on top of it.
func (f *flags) load(cmd *cobra.Command, stdout, stderr io.Writer) (*app, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return nil, err
	}
	changed := cmd.Flags().Changed
	if changed("capacity") {
		cfg.StackCapacity = f.capacity
	}
	if changed("parens") {
		cfg.Parens = f.parens
	}
	if changed("overflow") {
		cfg.Overflow = f.overflow
	}
	if changed("ties") {
		cfg.Ties = f.ties
	}
	if changed("dialect") {
		cfg.Dialects = f.dialects
	}
	if changed("locale") {
		cfg.Locale = f.locale
	}
	if f.debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	symbols, err := cfg.SymbolTable()
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:       cfg,
		tokenizer: calc.NewTokenizer(symbols),
		evaluator: calc.New(cfg.Options(logger)...),
		out:       newPrinter(stdout, cfg.Language()),
	}, nil
}

func (a *app) eval(tokens []calc.Token) error {
	v, err := a.evaluator.Evaluate(tokens)
	if err != nil {
		return err
	}
	a.out.answer(v)
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// run executes the command line and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd(stdin, stdout, stderr)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return 0
	}
	reportError(stderr, err)
	return exitCode(err)
}

func reportError(w io.Writer, err error) {
	c := color.New(color.FgRed)
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		c.DisableColor()
	}
	var e *calc.Error
	if errors.As(err, &e) {
		c.Fprintf(w, "Error: %v\n", e)
		return
	}
	c.Fprintf(w, "calc: %v\n", err)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
