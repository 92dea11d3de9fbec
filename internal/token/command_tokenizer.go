package token

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/DjordjeVuckovic/cryptolang/internal/apperr"
)

// CommandTokenizer splits a single CryptoLang statement into tokens.
// It has no keyword table: every keyword-shaped run becomes a KEYWORD and the
// parser decides what it means. A CommandTokenizer is not safe for concurrent use.
type CommandTokenizer struct {
	input []rune
	pos   int
}

func NewCommandTokenizer() *CommandTokenizer {
	return &CommandTokenizer{}
}

// Tokenize converts the input string into a slice of Tokens terminated by one EOF.
// Example: `ENCRIPTAR "Ola Mundo" USANDO CESAR COM CHAVE 3`
//
// On a lexical error no tokens are returned.
func (t *CommandTokenizer) Tokenize(input string) ([]Token, error) {
	t.input = []rune(input)
	t.pos = 0

	var tokens []Token

	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		switch {
		case isSpace(ch):
			t.pos++
		case ch == '"':
			tokens = append(tokens, t.readString())
		case isDigit(ch):
			tokens = append(tokens, t.readInt())
		case isKeywordStart(ch):
			tokens = append(tokens, t.readKeyword())
		default:
			return nil, apperr.NewLexical(fmt.Sprintf("invalid character %q at position %d outside quotes", ch, t.pos))
		}
	}

	tokens = append(tokens, Token{Type: EOF})
	return tokens, nil
}

// readString consumes a quoted literal verbatim. A missing closing quote ends the
// literal at end of input.
func (t *CommandTokenizer) readString() Token {
	t.pos++ // skip opening quote
	start := t.pos
	for t.pos < len(t.input) && t.input[t.pos] != '"' {
		t.pos++
	}
	value := string(t.input[start:t.pos])
	if t.pos < len(t.input) {
		t.pos++ // skip closing quote
	}
	return String(value)
}

// readInt accumulates digits into an int64 without overflow checks.
func (t *CommandTokenizer) readInt() Token {
	start := t.pos
	var n int64
	for t.pos < len(t.input) && isDigit(t.input[t.pos]) {
		n = n*10 + int64(t.input[t.pos]-'0')
		t.pos++
	}
	return Token{Type: INT, Value: string(t.input[start:t.pos]), Int: n}
}

func (t *CommandTokenizer) readKeyword() Token {
	start := t.pos
	for t.pos < len(t.input) && isKeywordChar(t.input[t.pos]) {
		t.pos++
	}
	return Keyword(strings.ToUpper(string(t.input[start:t.pos])))
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isSymbol(ch rune) bool {
	return ch == '=' || ch == '+' || ch == '/'
}

func isKeywordStart(ch rune) bool {
	return unicode.IsLetter(ch) || isSymbol(ch)
}

func isKeywordChar(ch rune) bool {
	return unicode.IsLetter(ch) || isDigit(ch) || isSymbol(ch)
}
