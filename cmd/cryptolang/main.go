package main

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/cryptolang/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}
