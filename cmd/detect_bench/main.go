package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/cryptolang/internal/analyst"
	"github.com/DjordjeVuckovic/cryptolang/internal/bench/report"
	"github.com/DjordjeVuckovic/cryptolang/internal/bench/runner"
	"github.com/DjordjeVuckovic/cryptolang/internal/bench/suite"
	"github.com/DjordjeVuckovic/cryptolang/internal/cipher"
	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary"
	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary/factory"
	"github.com/DjordjeVuckovic/cryptolang/pkg/config/env"
	"github.com/spf13/cobra"
)

type benchOptions struct {
	suitePath    string
	dictManifest string
	output       string
	runs         int
	warmup       int
	minAccuracy  float64
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("Detection benchmark failed", "error", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &benchOptions{}

	cmd := &cobra.Command{
		Use:   "detect_bench",
		Short: "Measure DETECTAR accuracy and latency against a suite of known ciphertexts",
		Long: `Run every case of a detection suite through the cryptanalyst and report
how many were identified correctly, broken down by method, with latency stats.

  detect_bench --suite bench/suites/detection.yaml
  detect_bench --suite s.yaml --dict-manifest dict.yaml --runs 20 --output report.json

Without --dict-manifest the dictionary source comes from DICT_SOURCE
(embedded by default).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.suitePath, "suite", "s", "", "Detection suite YAML file")
	cmd.Flags().StringVar(&opts.dictManifest, "dict-manifest", "", "Dictionary manifest file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Also write the report as JSON to this file")
	cmd.Flags().IntVar(&opts.runs, "runs", runner.DefaultRuns, "Timed detections per case")
	cmd.Flags().IntVar(&opts.warmup, "warmup", runner.DefaultWarmupRuns, "Untimed detections per case")
	cmd.Flags().Float64Var(&opts.minAccuracy, "min-accuracy", 0, "Fail when accuracy (percent) is below this value")
	_ = cmd.MarkFlagRequired("suite")

	return cmd
}

func runBench(cmd *cobra.Command, opts *benchOptions) error {
	env.SetupLogLevel()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := suite.LoadFromFile(opts.suitePath)
	if err != nil {
		return err
	}

	store, err := loadDictionary(ctx, opts.dictManifest)
	if err != nil {
		return err
	}

	r := runner.New(runner.Config{WarmupRuns: opts.warmup, Runs: opts.runs}, analyst.New(store), cipher.DefaultRegistry())
	result, err := r.Run(ctx, s)
	if err != nil {
		return err
	}

	rep := report.Build(result)
	report.WriteTable(rep, cmd.OutOrStdout())

	if opts.output != "" {
		if err := report.WriteJSON(rep, opts.output); err != nil {
			return err
		}
		slog.Info("Report written", "path", opts.output)
	}

	if rep.Summary.Accuracy < opts.minAccuracy {
		return fmt.Errorf("accuracy %.1f%% is below the required %.1f%%", rep.Summary.Accuracy, opts.minAccuracy)
	}
	return nil
}

func loadDictionary(ctx context.Context, manifest string) (*dictionary.Store, error) {
	var cfg *factory.SourceConfig
	if manifest != "" {
		cfg = &factory.SourceConfig{Type: factory.File, ManifestPath: manifest}
	} else {
		var err error
		if cfg, err = factory.LoadEnv(); err != nil {
			return nil, err
		}
	}

	loader, closeLoader, err := factory.NewLoader(ctx, *cfg)
	if err != nil {
		return nil, err
	}
	defer closeLoader()

	store := dictionary.NewStore()
	if err := store.Load(ctx, loader); err != nil {
		return nil, err
	}
	return store, nil
}
