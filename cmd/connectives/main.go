// Command connectives aggregates elicited judgments about logical
// connectives and checks cross-linguistic generalizations against them.
package main

import (
	"os"

	"github.com/ppiankov/connectives/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		cli.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}
