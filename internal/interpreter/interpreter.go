package interpreter

import (
	"fmt"

	"github.com/DjordjeVuckovic/cryptolang/internal/analyst"
	"github.com/DjordjeVuckovic/cryptolang/internal/cipher"
	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary"
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
	"github.com/DjordjeVuckovic/cryptolang/internal/parser"
	"github.com/DjordjeVuckovic/cryptolang/internal/token"
)

// Result is the outcome of one statement. Report is set for DETECTAR only.
type Result struct {
	Command domain.Command
	Output  string
	Report  *analyst.Report
}

// Interpreter runs statements through tokenize, parse and execute.
// It holds no per-statement state and is safe for concurrent use.
type Interpreter struct {
	registry   *cipher.Registry
	analyst    *analyst.Analyst
	parser     parser.Parser
	parserOpts []parser.Option
}

type Option func(*Interpreter)

func WithRegistry(r *cipher.Registry) Option {
	return func(i *Interpreter) {
		i.registry = r
	}
}

func WithAnalyst(a *analyst.Analyst) Option {
	return func(i *Interpreter) {
		i.analyst = a
	}
}

// WithStrictTrailing makes statements with tokens after a complete command a syntax error.
func WithStrictTrailing() Option {
	return func(i *Interpreter) {
		i.parserOpts = append(i.parserOpts, parser.WithStrictTrailing())
	}
}

// New returns an interpreter whose DETECTAR statements consult oracle.
func New(oracle dictionary.Oracle, opts ...Option) *Interpreter {
	i := &Interpreter{}
	for _, opt := range opts {
		opt(i)
	}

	if i.registry == nil {
		i.registry = cipher.DefaultRegistry()
	}
	if i.analyst == nil {
		i.analyst = analyst.New(oracle)
	}
	i.parser = parser.NewCommandParser(i.parserOpts...)

	return i
}

// Eval stops at the first failing stage and returns its error unchanged.
func (i *Interpreter) Eval(source string) (*Result, error) {
	cmd, err := i.Parse(source)
	if err != nil {
		return nil, err
	}

	return i.Execute(cmd)
}

// Parse tokenizes and parses source without executing it.
func (i *Interpreter) Parse(source string) (domain.Command, error) {
	tokens, err := token.Tokenize(source)
	if err != nil {
		return nil, err
	}

	return i.parser.Parse(tokens)
}

func (i *Interpreter) Execute(cmd domain.Command) (*Result, error) {
	switch c := cmd.(type) {
	case domain.ActionCommand:
		out, err := i.registry.Apply(c.Method, c.Text, c.Key, c.Verb)
		if err != nil {
			return nil, err
		}
		return &Result{Command: c, Output: out}, nil

	case domain.DetectCommand:
		report := i.analyst.Detect(c.Text)
		return &Result{Command: c, Output: report.String(), Report: report}, nil

	default:
		return nil, fmt.Errorf("unsupported command type %T", cmd)
	}
}

// Detect runs the cryptanalyst directly on text.
func (i *Interpreter) Detect(text string) *analyst.Report {
	return i.analyst.Detect(text)
}

// Methods lists the registered cipher operations in registration order.
func (i *Interpreter) Methods() []cipher.Operation {
	return i.registry.List()
}

func (i *Interpreter) Ready() bool {
	return i.analyst.Ready()
}
