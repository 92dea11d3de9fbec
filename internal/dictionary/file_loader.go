package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
)

// FileLoader reads the word-list files named by a manifest.
type FileLoader struct {
	manifest *Manifest
}

func NewFileLoader(manifest *Manifest) *FileLoader {
	return &FileLoader{manifest: manifest}
}

func (l *FileLoader) Load(ctx context.Context) (Words, error) {
	words := make(Words, len(l.manifest.Languages))

	for _, entry := range l.manifest.Languages {
		lang, err := domain.ParseLanguage(entry.Language)
		if err != nil {
			return nil, err
		}
		for _, file := range entry.Files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			list, err := readWordFile(l.manifest.Path(file))
			if err != nil {
				return nil, err
			}
			slog.Debug("Word list read", "language", lang, "file", file, "words", len(list))
			words[lang] = append(words[lang], list...)
		}
	}

	return words, nil
}

func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	return ReadWordList(f)
}
