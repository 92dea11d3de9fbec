package es

import (
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// WordDocument is one dictionary entry in the index.
type WordDocument struct {
	Language string `json:"language"`
	Word     string `json:"word"`
}

// ID makes re-imports idempotent.
func (d WordDocument) ID() string {
	return d.Language + ":" + d.Word
}

func newWordDocument(lang domain.Language, word string) WordDocument {
	return WordDocument{Language: string(lang), Word: word}
}

func buildMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"language": types.NewKeywordProperty(),
			"word":     types.NewKeywordProperty(),
		},
	}
}
