// Package main serves the CryptoLang interpreter over HTTP.
package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/cryptolang/internal/api/router"
	"github.com/DjordjeVuckovic/cryptolang/internal/api/server"
	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary"
	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary/factory"
	"github.com/DjordjeVuckovic/cryptolang/internal/interpreter"
	"github.com/DjordjeVuckovic/cryptolang/pkg/config/env"
	pkgserver "github.com/DjordjeVuckovic/cryptolang/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}
	env.SetupLogLevel()

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	store := dictionary.NewStore()
	health := pkgserver.NewCompositeHealthChecker(dictionary.NewHealthChecker(store))

	s := server.New(sCfg, health).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "CryptoLang API is running")
	})

	loader, closeLoader, err := factory.NewLoader(s.Context(), cfg.DictConfig)
	if err != nil {
		slog.Error("Failed to create dictionary loader", "error", err, "source", cfg.DictConfig.Type)
		os.Exit(1)
		return
	}
	defer closeLoader()
	if backend, ok := factory.BackendHealthChecker(loader); ok {
		health.Add(backend)
	}

	store.LoadAsync(s.Context(), loader)

	var opts []interpreter.Option
	if cfg.StrictTrailing {
		opts = append(opts, interpreter.WithStrictTrailing())
	}
	interp := interpreter.New(store, opts...)

	cryptoRouter := router.NewCryptoRouter(s.Echo, interp)
	cryptoRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
