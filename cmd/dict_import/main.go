package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary"
	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary/factory"
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
	"github.com/DjordjeVuckovic/cryptolang/pkg/config/env"
	"github.com/spf13/cobra"
)

type importOptions struct {
	target   string
	language string
	files    []string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("Dictionary import failed", "error", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "dict_import",
		Short: "Import word lists into a PostgreSQL or Elasticsearch dictionary",
		Long: `Import one or more word-list files (one word per line, '#' comments)
for a single language into the dictionary store the API reads from.

  dict_import --target pg --language portuguese --file words/pt.txt
  dict_import --target es --language en --file a.txt --file b.txt

Connection settings come from the environment (PG_CONNECTION_STRING,
PG_DICT_TABLE, ES_ADDRESSES, ES_INDEX_NAME, ES_USERNAME, ES_PASSWORD).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "Import target (pg, es); defaults to DICT_SOURCE")
	cmd.Flags().StringVarP(&opts.language, "language", "l", "", "Language of the word lists (portuguese, english)")
	cmd.Flags().StringSliceVarP(&opts.files, "file", "f", nil, "Word-list file, repeatable")
	_ = cmd.MarkFlagRequired("language")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runImport(ctx context.Context, opts *importOptions) error {
	env.SetupLogLevel()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	lang, err := domain.ParseLanguage(opts.language)
	if err != nil {
		return err
	}

	cfg, err := NewAppConfig().Load(opts.target)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	words, err := readFiles(opts.files)
	if err != nil {
		return err
	}

	importer, closeImporter, err := factory.NewImporter(ctx, *cfg)
	if err != nil {
		return fmt.Errorf("failed to create importer: %w", err)
	}
	defer closeImporter()

	slog.Info("Importing words", "target", cfg.Type, "language", lang, "words", len(words))

	n, err := importer.Import(ctx, lang, words)
	if err != nil {
		return err
	}

	slog.Info("Import finished", "target", cfg.Type, "language", lang, "imported", n)
	return nil
}

func readFiles(paths []string) ([]string, error) {
	var words []string
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open word list: %w", err)
		}
		list, err := dictionary.ReadWordList(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		words = append(words, list...)
	}
	return words, nil
}
