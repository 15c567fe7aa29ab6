// Package main implements the lotto command line client: fetch the latest draw,
// check fixed sets against it, and inspect or import the draw history.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
