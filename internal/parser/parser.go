package parser

import (
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
	"github.com/DjordjeVuckovic/cryptolang/internal/token"
)

// Parser turns a token stream into a single command.
type Parser interface {
	Parse(tokens []token.Token) (domain.Command, error)
}
