// ABOUTME: Docs command for heapsize CLI
// ABOUTME: Generates the flag-reference markdown files into a destination directory

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/markalston/heap-sizing-analyzer/docgen"
	"github.com/markalston/heap-sizing-analyzer/flags"
	"github.com/spf13/cobra"
)

var docsOutputDir string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate flag reference documentation",
	Long: `Generate markdown reference pages for every heap sizing flag.

The destination directory is probed before any file is written; a read-only
destination is a configuration error, not a transient fault, so nothing is
retried.

Exit codes:
  0 - Documentation written
  1 - Destination not writable, or a file failed to write (message names the path)
  2 - Invalid input`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runDocs(os.Stderr)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringVar(&docsOutputDir, "output", "", "Destination directory (required)")
}

// runDocs generates the flag reference and returns the process exit code.
func runDocs(w io.Writer) int {
	if docsOutputDir == "" {
		fmt.Fprintln(w, "Error: --output is required")
		return 2
	}

	// Both failure kinds (unwritable destination, per-file write error) carry
	// the offending path in their message.
	store := flags.NewStore()
	if err := docgen.WriteFlagReference(docsOutputDir, store); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}
	return 0
}
