// ABOUTME: Entry point for heapsize CLI
// ABOUTME: Command-line tool for computing and exploring generational heap layouts

package main

import (
	"fmt"
	"os"

	"github.com/markalston/heap-sizing-analyzer/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
