// ABOUTME: Explore command for heapsize CLI
// ABOUTME: Launches the interactive heap layout explorer TUI

package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/markalston/heap-sizing-analyzer/cli/tui"
	"github.com/spf13/cobra"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Explore heap layouts interactively",
	Long: `Open a terminal UI to adjust the heap size and NewRatio and watch the
young/old generation split re-derive live.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := tea.NewProgram(tui.New(), tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
