package pg

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary"
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
	pkgtesting "github.com/DjordjeVuckovic/cryptolang/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPool(t *testing.T) *ConnectionPool {
	t.Helper()
	ctx := context.Background()

	container := pkgtesting.NewPGContainerWithCleanup(ctx, t)

	pool, err := NewConnectionPool(ctx, PoolConfig{ConnStr: container.ConnString})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func TestImportAndLoad(t *testing.T) {
	ctx := context.Background()
	pool := setupPool(t)

	importer := NewImporter(pool, "")
	require.NoError(t, importer.EnsureSchema(ctx))

	inserted, err := importer.Import(ctx, domain.LanguagePortuguese, []string{"Ola", "mundo", "ola", "  "})
	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)

	inserted, err = importer.Import(ctx, domain.LanguageEnglish, []string{"hello"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), inserted)

	inserted, err = importer.Import(ctx, domain.LanguagePortuguese, []string{"mundo", "casa"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), inserted, "existing words are not inserted twice")

	words, err := NewLoader(pool, DefaultTable).Load(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ola", "mundo", "casa"}, words[domain.LanguagePortuguese])
	assert.Equal(t, []string{"hello"}, words[domain.LanguageEnglish])

	store := dictionary.NewStore()
	require.NoError(t, store.Load(ctx, NewLoader(pool, "")))
	assert.True(t, store.IsKnownWord("casa", domain.LanguagePortuguese))
}

func TestLoader_SkipsUnsupportedLanguages(t *testing.T) {
	ctx := context.Background()
	pool := setupPool(t)

	_, err := pool.GetConn().Exec(ctx,
		"INSERT INTO dictionary_words (language, word) VALUES ('klingon', 'qapla'), ('english', 'yes')")
	require.NoError(t, err)

	words, err := NewLoader(pool, "").Load(ctx)

	require.NoError(t, err)
	assert.Len(t, words, 1)
	assert.Equal(t, []string{"yes"}, words[domain.LanguageEnglish])
}

func TestHealthChecker(t *testing.T) {
	pool := setupPool(t)

	assert.True(t, NewHealthChecker(pool).Healthy(context.Background()))
	assert.False(t, NewHealthChecker(nil).Healthy(context.Background()))
}
