package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary/factory"
	"github.com/DjordjeVuckovic/cryptolang/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

// Load reads the target's connection settings. target overrides DICT_SOURCE.
func (as *AppConfig) Load(target string) (*factory.SourceConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/dict_import/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	if target != "" {
		if err := os.Setenv("DICT_SOURCE", target); err != nil {
			return nil, err
		}
	}

	cfg, err := factory.LoadEnv()
	if err != nil {
		return nil, err
	}

	if cfg.Type != factory.PG && cfg.Type != factory.ES {
		return nil, fmt.Errorf("import target must be %s or %s, got %s", factory.PG, factory.ES, cfg.Type)
	}

	return cfg, nil
}
