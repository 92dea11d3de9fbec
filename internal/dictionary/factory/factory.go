package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary"
	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary/es"
	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary/pg"
	"github.com/DjordjeVuckovic/cryptolang/pkg/server"
)

// CloseFunc releases resources held by a loader or importer.
type CloseFunc func()

func noop() {}

// NewLoader creates the dictionary.Loader for the configured source.
func NewLoader(ctx context.Context, cfg SourceConfig) (dictionary.Loader, CloseFunc, error) {
	switch cfg.Type {
	case Embedded, "":
		return dictionary.NewEmbeddedLoader(), noop, nil

	case File:
		manifest, err := dictionary.LoadManifest(cfg.ManifestPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load dictionary manifest: %w", err)
		}
		return dictionary.NewFileLoader(manifest), noop, nil

	case PG:
		if cfg.Pg == nil {
			return nil, nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return pg.NewLoader(pool, cfg.Pg.Table), pool.Close, nil

	case ES:
		if cfg.Es == nil {
			return nil, nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		loader, err := es.NewLoader(*cfg.Es)
		if err != nil {
			return nil, nil, err
		}
		return loader, noop, nil

	default:
		return nil, nil, fmt.Errorf("unsupported dictionary source: %s", cfg.Type)
	}
}

// BackendHealthChecker returns a checker for the backing database of loaders
// that keep one open. Embedded, file and Elasticsearch loaders have none.
func BackendHealthChecker(loader dictionary.Loader) (server.HealthChecker, bool) {
	if l, ok := loader.(*pg.Loader); ok {
		return l.HealthChecker(), true
	}
	return nil, false
}

// NewImporter creates the dictionary.Importer for a persistent source.
func NewImporter(ctx context.Context, cfg SourceConfig) (dictionary.Importer, CloseFunc, error) {
	switch cfg.Type {
	case PG:
		if cfg.Pg == nil {
			return nil, nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		importer := pg.NewImporter(pool, cfg.Pg.Table)
		if err := importer.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return importer, pool.Close, nil

	case ES:
		if cfg.Es == nil {
			return nil, nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		importer, err := es.NewImporter(ctx, *cfg.Es)
		if err != nil {
			return nil, nil, err
		}
		return importer, noop, nil

	default:
		return nil, nil, fmt.Errorf("dictionary source %q does not support imports", cfg.Type)
	}
}
