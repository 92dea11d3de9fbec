package main

import (
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

type CryptoLangConfig struct {
	StrictTrailing bool
	DictConfig     factory.SourceConfig
}

func (as *AppConfig) Load() (*CryptoLangConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/cryptolang_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	dictCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load dictionary configuration from environment", "error", err)
		return nil, err
	}

	return &CryptoLangConfig{
		StrictTrailing: env.Bool("STRICT_TRAILING", false),
		DictConfig:     *dictCfg,
	}, nil
}
