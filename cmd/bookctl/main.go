// Command bookctl browses the catalog from the terminal.
package main

import (
	"context"
	"os"

	"github.com/fatih/color"
)

func main() {
	a := newApp(os.Stdout, os.Stderr)
	defer a.close()

	if err := newRootCmd(a).ExecuteContext(context.Background()); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Error: %s\n", err)
		a.close()
		os.Exit(1)
	}
}
