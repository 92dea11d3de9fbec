package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
)

// Words maps a language to its word list.
type Words map[domain.Language][]string

// Loader fetches word lists from some source.
type Loader interface {
	Load(ctx context.Context) (Words, error)
}

type StaticLoader struct {
	words Words
}

func NewStaticLoader(words Words) *StaticLoader {
	return &StaticLoader{words: words}
}

func (l *StaticLoader) Load(_ context.Context) (Words, error) {
	return l.words, nil
}

// ReadWordList reads one word per line. Blank lines and lines starting with '#'
// are skipped; only the first field of a line is used, so frequency lists work too.
func ReadWordList(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.Fields(line)[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	return words, nil
}
