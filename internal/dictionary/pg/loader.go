package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary"
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
	"github.com/jackc/pgx/v5"
)

// Loader reads every (language, word) row of the dictionary table.
type Loader struct {
	pool  *ConnectionPool
	table string
}

func NewLoader(pool *ConnectionPool, table string) *Loader {
	return &Loader{pool: pool, table: tableName(table)}
}

// HealthChecker pings the database backing this loader.
func (l *Loader) HealthChecker() *HealthChecker {
	return NewHealthChecker(l.pool)
}

func (l *Loader) Load(ctx context.Context) (dictionary.Words, error) {
	slog.Info("Loading dictionaries from PostgreSQL", "table", l.table)

	sql := fmt.Sprintf("SELECT language, word FROM %s", pgx.Identifier{l.table}.Sanitize())
	rows, err := l.pool.GetConn().Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query dictionary words: %w", err)
	}
	defer rows.Close()

	words := make(dictionary.Words)
	skipped := 0
	for rows.Next() {
		var language, word string
		if err := rows.Scan(&language, &word); err != nil {
			return nil, fmt.Errorf("failed to scan dictionary word: %w", err)
		}

		lang, err := domain.ParseLanguage(language)
		if err != nil {
			skipped++
			continue
		}
		words[lang] = append(words[lang], word)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	if skipped > 0 {
		slog.Warn("Skipped words of unsupported languages", "count", skipped, "table", l.table)
	}

	return words, nil
}
