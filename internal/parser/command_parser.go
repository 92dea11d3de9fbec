package parser

import (
	"fmt"

	"github.com/DjordjeVuckovic/cryptolang/internal/apperr"
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
	"github.com/DjordjeVuckovic/cryptolang/internal/token"
)

type CommandParser struct {
	strictTrailing bool
}

type Option func(*CommandParser)

// WithStrictTrailing rejects tokens left over after a complete command.
// By default they are ignored.
func WithStrictTrailing() Option {
	return func(p *CommandParser) {
		p.strictTrailing = true
	}
}

func NewCommandParser(opts ...Option) *CommandParser {
	p := &CommandParser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse is a one-token-lookahead recursive descent over the two statement shapes:
//
//	DETECTAR "text"
//	(ENCRIPTAR|DESENCRIPTAR) "text" USANDO <method> COM CHAVE (<int>|"text")
func (p *CommandParser) Parse(tokens []token.Token) (domain.Command, error) {
	c := &cursor{tokens: tokens}

	var (
		cmd domain.Command
		err error
	)
	if c.current().Is(token.KEYWORD, domain.KeywordDetect) {
		cmd, err = p.parseDetect(c)
	} else {
		cmd, err = p.parseAction(c)
	}
	if err != nil {
		return nil, err
	}

	if p.strictTrailing && c.current().Type != token.EOF {
		return nil, apperr.NewSyntax(fmt.Sprintf("unexpected %s after end of command", c.current()))
	}

	return cmd, nil
}

func (p *CommandParser) parseDetect(c *cursor) (domain.Command, error) {
	c.advance()

	text, ok := c.accept(token.STRING)
	if !ok {
		return nil, expected("quoted text after DETECTAR", c.current())
	}

	return domain.DetectCommand{Text: text.Value}, nil
}

func (p *CommandParser) parseAction(c *cursor) (domain.Command, error) {
	head := c.current()
	verb, ok := domain.ParseVerb(head.Value)
	if head.Type != token.KEYWORD || !ok {
		return nil, apperr.NewSyntax("unknown command: use ENCRIPTAR, DESENCRIPTAR or DETECTAR")
	}
	c.advance()

	text, ok := c.accept(token.STRING)
	if !ok {
		return nil, expected("quoted text after "+verb.String(), c.current())
	}

	if !c.acceptKeyword(domain.KeywordUsing) {
		return nil, expected("'"+domain.KeywordUsing+"'", c.current())
	}

	method, ok := c.accept(token.KEYWORD)
	if !ok {
		return nil, expected("cipher method after "+domain.KeywordUsing, c.current())
	}

	if !c.acceptKeyword(domain.KeywordWith) {
		return nil, expected("'"+domain.KeywordWith+"'", c.current())
	}

	if !c.acceptKeyword(domain.KeywordKey) {
		return nil, expected("'"+domain.KeywordKey+"'", c.current())
	}

	var key domain.Key
	switch k := c.current(); k.Type {
	case token.INT:
		key = domain.IntKey(k.Int)
	case token.STRING:
		key = domain.TextKey(k.Value)
	default:
		return nil, apperr.NewSyntax(fmt.Sprintf("invalid key: use a number or quoted text, got %s", k))
	}
	c.advance()

	return domain.ActionCommand{
		Verb:   verb,
		Text:   text.Value,
		Method: domain.Method(method.Value),
		Key:    key,
	}, nil
}

func expected(what string, got token.Token) error {
	return apperr.NewSyntax(fmt.Sprintf("expected %s, got %s", what, got))
}

// cursor walks a token stream and never moves past EOF. A stream that is
// missing its EOF terminator behaves as if it had one.
type cursor struct {
	tokens []token.Token
	pos    int
}

func (c *cursor) current() token.Token {
	if c.pos >= len(c.tokens) {
		return token.Token{Type: token.EOF}
	}
	return c.tokens[c.pos]
}

func (c *cursor) advance() {
	if c.current().Type != token.EOF {
		c.pos++
	}
}

func (c *cursor) accept(typ token.Type) (token.Token, bool) {
	tok := c.current()
	if tok.Type != typ {
		return tok, false
	}
	c.advance()
	return tok, true
}

func (c *cursor) acceptKeyword(value string) bool {
	if !c.current().Is(token.KEYWORD, value) {
		return false
	}
	c.advance()
	return true
}
