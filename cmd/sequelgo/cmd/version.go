package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, injected at build time.
var (
	Version   = "0.3.0"
	GitCommit = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sequelgo\n")
		fmt.Printf("  Version:    %s\n", Version)
		fmt.Printf("  Git Commit: %s\n", GitCommit)
	},
}
