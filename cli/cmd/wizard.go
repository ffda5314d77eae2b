// ABOUTME: Interactive sizing wizard for heapsize CLI
// ABOUTME: Collects heap flags through a huh form, then runs a sizing pass

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/markalston/heap-sizing-analyzer/flags"
	"github.com/markalston/heap-sizing-analyzer/models"
	"github.com/spf13/cobra"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive sizing wizard",
	Long:  `Collect heap sizes through an interactive form and compute the generation layout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWizard(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(wizardCmd)
}

// wizardInput holds the form field values. huh works on strings; empty
// fields keep the store defaults with default origin.
type wizardInput struct {
	maxHeap    string
	initial    string
	minHeap    string
	newSize    string
	oldSize    string
	maxNewSize string
}

func runWizard(w io.Writer) error {
	var in wizardInput

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Maximum heap size").
				Description("e.g. 256m or 2g; empty keeps the default").
				Validate(validateOptionalSize).
				Value(&in.maxHeap),
			huh.NewInput().
				Title("Initial heap size").
				Validate(validateOptionalSize).
				Value(&in.initial),
			huh.NewInput().
				Title("Minimum heap size").
				Validate(validateOptionalSize).
				Value(&in.minHeap),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Young generation size (NewSize)").
				Description("Fixing this honors it exactly").
				Validate(validateOptionalSize).
				Value(&in.newSize),
			huh.NewInput().
				Title("Old generation size (OldSize)").
				Description("Overridden silently if MaxNewSize conflicts").
				Validate(validateOptionalSize).
				Value(&in.oldSize),
			huh.NewInput().
				Title("Young generation cap (MaxNewSize)").
				Validate(validateOptionalSize).
				Value(&in.maxNewSize),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	store := flags.NewStore()
	fields := []struct {
		value string
		flag  string
	}{
		{in.maxHeap, models.FlagMaxHeapSize},
		{in.initial, models.FlagInitialHeapSize},
		{in.minHeap, models.FlagMinHeapSize},
		{in.newSize, models.FlagNewSize},
		{in.oldSize, models.FlagOldSize},
		{in.maxNewSize, models.FlagMaxNewSize},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		bytes, err := flags.ParseSize(f.value)
		if err != nil {
			return err
		}
		if err := store.SetCommandLine(f.flag, bytes); err != nil {
			return err
		}
	}

	report, err := computeReport(store)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, formatReportHuman(report))
	return nil
}

// validateOptionalSize accepts an empty field or a parseable size.
func validateOptionalSize(s string) error {
	if s == "" {
		return nil
	}
	_, err := flags.ParseSize(s)
	return err
}
