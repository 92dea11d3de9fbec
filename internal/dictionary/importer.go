package dictionary

import (
	"context"

	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
)

// Importer writes a word list of one language into a persistent source.
type Importer interface {
	Import(ctx context.Context, lang domain.Language, words []string) (int64, error)
}
