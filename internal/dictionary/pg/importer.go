package pg

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
	"github.com/jackc/pgx/v5"
)

// Importer bulk-loads words with COPY and merges them into the dictionary table.
type Importer struct {
	pool  *ConnectionPool
	table string
}

func NewImporter(pool *ConnectionPool, table string) *Importer {
	return &Importer{pool: pool, table: tableName(table)}
}

func (i *Importer) EnsureSchema(ctx context.Context) error {
	sql := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			language TEXT NOT NULL,
			word     TEXT NOT NULL,
			PRIMARY KEY (language, word)
		)`, pgx.Identifier{i.table}.Sanitize())

	if _, err := i.pool.GetConn().Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to create dictionary table: %w", err)
	}
	return nil
}

// Import returns the number of words that were not already stored.
func (i *Importer) Import(ctx context.Context, lang domain.Language, words []string) (int64, error) {
	if len(words) == 0 {
		return 0, nil
	}

	tx, err := i.pool.GetConn().Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `CREATE TEMP TABLE staging_words (language TEXT, word TEXT) ON COMMIT DROP`); err != nil {
		return 0, fmt.Errorf("failed to create staging table: %w", err)
	}

	rows := make([][]any, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			rows = append(rows, []any{string(lang), w})
		}
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{"staging_words"}, []string{"language", "word"}, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("failed to copy words: %w", err)
	}

	tag, err := tx.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (language, word)
		SELECT DISTINCT language, word FROM staging_words
		ON CONFLICT DO NOTHING`, pgx.Identifier{i.table}.Sanitize()))
	if err != nil {
		return 0, fmt.Errorf("failed to merge words: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}

	slog.Info("Words imported into PostgreSQL",
		"language", lang,
		"copied", copied,
		"inserted", tag.RowsAffected(),
		"table", i.table)

	return tag.RowsAffected(), nil
}
