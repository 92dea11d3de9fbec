package dictionary

import (
	"bytes"
	"context"
	"embed"
	"fmt"

	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
)

//go:embed words/*.txt
var embeddedWords embed.FS

var embeddedFiles = map[domain.Language]string{
	domain.LanguagePortuguese: "words/portuguese.txt",
	domain.LanguageEnglish:    "words/english.txt",
}

// EmbeddedLoader serves the small built-in word lists compiled into the binary.
type EmbeddedLoader struct{}

func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

func (l *EmbeddedLoader) Load(_ context.Context) (Words, error) {
	words := make(Words, len(embeddedFiles))
	for lang, name := range embeddedFiles {
		data, err := embeddedWords.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read embedded %s: %w", name, err)
		}
		list, err := ReadWordList(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parse embedded %s: %w", name, err)
		}
		words[lang] = list
	}
	return words, nil
}
