// ABOUTME: Root command for heapsize CLI
// ABOUTME: Handles global flags shared by all subcommands

package cmd

import (
	"github.com/spf13/cobra"
)

var jsonOutput bool

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "heapsize",
	Short: "Generational heap sizing analyzer",
	Long: `heapsize computes the minimum and initial sizes of the young and old
generations of a two-generation heap from possibly-conflicting size flags.

Sizes accept binary suffixes: 512m, 2g, 65536k. Flags set explicitly carry
command-line origin and are honored exactly wherever the sizing invariants
allow; everything else is derived ergonomically.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}
