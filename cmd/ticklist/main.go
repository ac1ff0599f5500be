// Package main provides the ticklist CLI, the terminal front end for the
// checklist store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitUserError)
	}
}
