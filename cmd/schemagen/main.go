package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/cryptolang/internal/bench/suite"
	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary"
	"github.com/DjordjeVuckovic/cryptolang/pkg/schema"
	"github.com/spf13/cobra"
)

const schemaBaseID = "https://schemas.cryptolang.dev"

type target struct {
	file  string
	value any
}

var targets = []target{
	{file: "dictionary-manifest-v1.json", value: dictionary.Manifest{}},
	{file: "detection-suite-v1.json", value: suite.Suite{}},
}

func main() {
	var outputDir string

	cmd := &cobra.Command{
		Use:          "schemagen",
		Short:        "Generate JSON schemas for the dictionary manifest and detection suite files",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(outputDir, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output", "o", "api", "Output directory for generated schemas")

	if err := cmd.Execute(); err != nil {
		slog.Error("Schema generation failed", "error", err)
		os.Exit(1)
	}
}

func generate(outputDir string, out io.Writer) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	generator := schema.NewGenerator(schemaBaseID)

	for _, t := range targets {
		schemaJSON, err := generator.GenerateJSONSchema(t.value)
		if err != nil {
			return fmt.Errorf("generate %s: %w", t.file, err)
		}

		path := filepath.Join(outputDir, t.file)
		if err := os.WriteFile(path, []byte(schemaJSON+"\n"), 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(out, "Generated JSON schema: %s\n", path)
	}

	return nil
}
