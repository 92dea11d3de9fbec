package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
	"github.com/spf13/cobra"
)

const DefaultWait = 30 * time.Second

func newRunCommand(opts *options) *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "run <statement>",
		Short: "Evaluate a single statement",
		Example: `  cryptolang run 'ENCRIPTAR "Ola Mundo" USANDO CESAR COM CHAVE 3'
  cryptolang run 'DETECTAR "Rod Pxqgr"'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatement(cmd, opts, strings.Join(args, " "), wait)
		},
	}

	cmd.Flags().DurationVar(&wait, "wait", DefaultWait, "How long DETECTAR waits for the dictionaries to load")

	return cmd
}

func runStatement(cmd *cobra.Command, opts *options, source string, wait time.Duration) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	interp, store, closeLoader, err := opts.session(ctx)
	if err != nil {
		return err
	}
	defer closeLoader()

	parsed, err := interp.Parse(source)
	if err != nil {
		return err
	}

	if parsed.Type() == domain.CommandDetect {
		waitCtx, cancel := context.WithTimeout(ctx, wait)
		defer cancel()
		if err := store.WaitReady(waitCtx); err != nil {
			slog.Warn("Dictionaries not ready", "error", err, "status", store.Status())
		}
	}

	result, err := interp.Execute(parsed)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Output)
	return err
}
