package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary/es"
	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary/pg"
	"github.com/DjordjeVuckovic/cryptolang/pkg/utils"
)

type SourceType string

const (
	Embedded SourceType = "embedded"
	File     SourceType = "file"
	PG       SourceType = "pg"
	ES       SourceType = "es"
)

var SupportedSources = []SourceType{Embedded, File, PG, ES}

type SourceConfig struct {
	Type         SourceType
	ManifestPath string
	Pg           *pg.PoolConfig
	Es           *es.ClientConfig
}

// LoadEnv reads the dictionary source from DICT_SOURCE and its source-specific variables.
// An unset DICT_SOURCE selects the embedded word lists.
func LoadEnv() (*SourceConfig, error) {
	sourceType := SourceType(strings.ToLower(os.Getenv("DICT_SOURCE")))
	if sourceType == "" {
		sourceType = Embedded
	}

	cfg := &SourceConfig{Type: sourceType}

	switch sourceType {
	case Embedded:
	case File:
		cfg.ManifestPath = os.Getenv("DICT_MANIFEST")
		if cfg.ManifestPath == "" {
			slog.Error("DICT_MANIFEST environment variable is not set")
			return nil, fmt.Errorf("DICT_MANIFEST environment variable is not set")
		}
	case PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
			Table:   os.Getenv("PG_DICT_TABLE"),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	case ES:
		cfg.Es = &es.ClientConfig{
			Addresses: utils.SplitList(os.Getenv("ES_ADDRESSES"), ","),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if len(cfg.Es.Addresses) == 0 || cfg.Es.IndexName == "" {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses, "indexName", cfg.Es.IndexName)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses or index name is missing")
		}
	default:
		slog.Error("Invalid DICT_SOURCE environment variable value", "value", sourceType)
		return nil, fmt.Errorf(
			"invalid DICT_SOURCE environment variable value: %s, expected one of %v",
			sourceType,
			SupportedSources)
	}

	return cfg, nil
}
