// Version command for the ticklist CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release version, overridable at build time with
// -ldflags "-X main.Version=...".
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ticklist", Version)
	},
}
