package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/DjordjeVuckovic/cryptolang/internal/interpreter"
	"github.com/spf13/cobra"
)

const prompt = "cryptolang> "

func newReplCommand(opts *options, stdio IO) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read statements from stdin, one per line",
		Long: `Evaluate one statement per input line and print its result, or
"ERROR: <message>" when it fails. Type "exit" or "quit" to leave.
The prompt is only shown when stdin is a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			interp, _, closeLoader, err := opts.session(ctx)
			if err != nil {
				return err
			}
			defer closeLoader()

			interactive := stdio.IsTerminal != nil && stdio.IsTerminal()
			return repl(interp, cmd.InOrStdin(), cmd.OutOrStdout(), interactive)
		},
	}
}

func repl(interp *interpreter.Interpreter, in io.Reader, out io.Writer, interactive bool) error {
	scanner := bufio.NewScanner(in)

	for {
		if interactive {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		result, err := interp.Eval(line)
		if err != nil {
			fmt.Fprintf(out, "ERROR: %s\n", err)
			continue
		}
		fmt.Fprintln(out, result.Output)
	}

	if interactive {
		fmt.Fprintln(out)
	}
	return scanner.Err()
}
