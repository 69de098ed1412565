// Package cmd provides the command-line interface for debugtag.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "debugtag",
	Short: "Debugtag CLI inspects how debug tags spread across goroutines.",
	Long: `Debugtag CLI inspects how debug tags spread across goroutines. ` +
		`It can scan live tag generation for collisions (spread) and print ` +
		`the golden-ratio offset sequence the library seeds counters with ` +
		`(sequence).`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
