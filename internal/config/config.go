package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/mattn/calc"
	"github.com/mattn/calc/dialect"
)

// ErrConfiguration indicates an invalid configuration value.
var ErrConfiguration = errors.New("configuration error")

// Config is the on-disk calculator configuration.
type Config struct {
	StackCapacity int               `yaml:"stack_capacity"`
	Parens        string            `yaml:"parens"`
	Overflow      string            `yaml:"overflow"`
	Ties          string            `yaml:"ties"`
	Dialects      []string          `yaml:"dialects"`
	Symbols       map[string]string `yaml:"symbols,omitempty"`
	LogLevel      string            `yaml:"log_level"`
	Locale        string            `yaml:"locale,omitempty"`
}

// Default returns the configuration used when no file is given. It accepts
// the shell dialect together with plain ASCII operators.
func Default() *Config {
	return &Config{
		StackCapacity: calc.DefaultStackCapacity,
		Parens:        "strict",
		Overflow:      "wrap",
		Ties:          "defer",
		Dialects:      []string{"shell", "ascii"},
		LogLevel:      "info",
	}
}

// Load reads a YAML config file on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	b, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var problems []string

	if c.StackCapacity <= 0 {
		problems = append(problems, fmt.Sprintf("stack_capacity must be positive, got %d", c.StackCapacity))
	}
	if _, err := ParseParens(c.Parens); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := ParseOverflow(c.Overflow); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := ParseTies(c.Ties); err != nil {
		problems = append(problems, err.Error())
	}
	if len(c.Dialects) == 0 && len(c.Symbols) == 0 {
		problems = append(problems, "no dialects or symbols configured")
	}
	for _, name := range c.Dialects {
		if _, err := dialect.Lookup(name); err != nil {
			problems = append(problems, err.Error())
		}
	}
	for sym, kind := range c.Symbols {
		if _, err := calc.ParseKind(kind); err != nil {
			problems = append(problems, fmt.Sprintf("symbol %q: %v", sym, err))
		}
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}
	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			problems = append(problems, fmt.Sprintf("locale %q: %v", c.Locale, err))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrConfiguration, strings.Join(problems, "; "))
	}
	return nil
}

// Options converts the config to evaluator options. The config must be
// valid.
func (c *Config) Options(logger *slog.Logger) []calc.Option {
	parens, _ := ParseParens(c.Parens)
	overflow, _ := ParseOverflow(c.Overflow)
	ties, _ := ParseTies(c.Ties)
	return []calc.Option{
		calc.WithStackCapacity(c.StackCapacity),
		calc.WithParens(parens),
		calc.WithOverflow(overflow),
		calc.WithTies(ties),
		calc.WithLogger(logger),
	}
}

// SymbolTable merges the configured dialects and extra symbols.
func (c *Config) SymbolTable() (map[string]calc.Kind, error) {
	m, err := dialect.Merge(c.Dialects...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	for sym, kind := range c.Symbols {
		k, err := calc.ParseKind(kind)
		if err != nil {
			return nil, fmt.Errorf("%w: symbol %q: %v", ErrConfiguration, sym, err)
		}
		m[sym] = k
	}
	return m, nil
}

// Language returns the locale tag for printing results, or language.Und
// when none is set.
func (c *Config) Language() language.Tag {
	if c.Locale == "" {
		return language.Und
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}

func ParseParens(s string) (calc.ParenMode, error) {
	switch strings.ToLower(s) {
	case "", "strict":
		return calc.ParenStrict, nil
	case "compat":
		return calc.ParenCompat, nil
	}
	return 0, fmt.Errorf("parens must be strict or compat, got %q", s)
}

func ParseOverflow(s string) (calc.Overflow, error) {
	switch strings.ToLower(s) {
	case "", "wrap":
		return calc.OverflowWrap, nil
	case "check":
		return calc.OverflowCheck, nil
	}
	return 0, fmt.Errorf("overflow must be wrap or check, got %q", s)
}

func ParseTies(s string) (calc.Ties, error) {
	switch strings.ToLower(s) {
	case "", "defer":
		return calc.TiesDefer, nil
	case "reduce":
		return calc.TiesReduce, nil
	}
	return 0, fmt.Errorf("ties must be defer or reduce, got %q", s)
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("log_level must be debug, info, warn or error, got %q", s)
}
