// Package main is the entry point for the qoc CLI.
package main

import (
	"fmt"
	"os"

	"github.com/quantacode/qoc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
