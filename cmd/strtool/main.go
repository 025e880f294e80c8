// Command strtool exposes the strtools string operations on the
// command line: variable substitution, trimming, shrinking, and
// blank-aware joining, plus profile management.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "strtool",
		Usage: "string utilities: subst, vars, trim, shrink, stitch",
		Commands: []*cli.Command{
			substCommand,
			varsCommand,
			trimCommand,
			shrinkCommand,
			stitchCommand,
			profileCommand,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
