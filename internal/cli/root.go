// Package cli implements the cryptolang command line.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary"
	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary/factory"
	"github.com/DjordjeVuckovic/cryptolang/internal/interpreter"
	"github.com/DjordjeVuckovic/cryptolang/pkg/config/env"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type options struct {
	dictManifest   string
	strictTrailing bool
	logLevel       string
}

// IO carries the streams a command reads and writes. IsTerminal reports
// whether In is interactive.
type IO struct {
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
	IsTerminal func() bool
}

func StdIO() IO {
	return IO{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

// NewRootCommand builds the cryptolang command tree.
func NewRootCommand(stdio IO) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "cryptolang",
		Short: "Interpreter for the CryptoLang cipher language",
		Long: `Evaluate CryptoLang statements.

STATEMENTS:
  ENCRIPTAR "Ola Mundo" USANDO CESAR COM CHAVE 3
  DESENCRIPTAR "Rod Pxqgr" USANDO CESAR COM CHAVE 3
  DETECTAR "Rod Pxqgr"

METHODS:
  CESAR, XOR            numeric key
  VIGENERE, SUBSTITUICAO quoted text key
  BASE64                key ignored (use 0)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(stdio.Err, opts.logLevel)
		},
	}

	root.SetIn(stdio.In)
	root.SetOut(stdio.Out)
	root.SetErr(stdio.Err)

	root.PersistentFlags().StringVar(&opts.dictManifest, "dict-manifest", "", "Dictionary manifest file (default: built-in word lists)")
	root.PersistentFlags().BoolVar(&opts.strictTrailing, "strict", false, "Reject tokens after a complete statement")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(newRunCommand(opts))
	root.AddCommand(newReplCommand(opts, stdio))

	return root
}

// Execute runs the command tree on the process streams.
func Execute() error {
	return NewRootCommand(StdIO()).Execute()
}

func setupLogger(w io.Writer, level string) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: env.ParseLogLevel(level)})
	slog.SetDefault(slog.New(handler))
}

// session starts loading the dictionary in the background and returns an
// interpreter reading from it.
func (o *options) session(ctx context.Context) (*interpreter.Interpreter, *dictionary.Store, func(), error) {
	cfg := factory.SourceConfig{Type: factory.Embedded}
	if o.dictManifest != "" {
		cfg = factory.SourceConfig{Type: factory.File, ManifestPath: o.dictManifest}
	}

	loader, closeLoader, err := factory.NewLoader(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	store := dictionary.NewStore()
	store.LoadAsync(ctx, loader)

	var interpOpts []interpreter.Option
	if o.strictTrailing {
		interpOpts = append(interpOpts, interpreter.WithStrictTrailing())
	}

	return interpreter.New(store, interpOpts...), store, closeLoader, nil
}
