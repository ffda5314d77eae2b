// ABOUTME: Compute command for heapsize CLI
// ABOUTME: Runs one sizing pass over command-line flags and prints the generation layout

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/markalston/heap-sizing-analyzer/flags"
	"github.com/markalston/heap-sizing-analyzer/models"
	"github.com/markalston/heap-sizing-analyzer/services"
	"github.com/spf13/cobra"
)

var (
	minHeapArg    string
	initialArg    string
	maxHeapArg    string
	newSizeArg    string
	oldSizeArg    string
	maxNewSizeArg string
	alignmentArg  string
	minDeltaArg   string
	newRatioArg   uint64
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute generation sizes",
	Long: `Compute the minimum and initial young/old generation sizes.

Size flags given explicitly carry command-line origin: NewSize is honored
exactly, OldSize is honored unless the MaxNewSize young cap conflicts with
it, in which case the young side wins and OldSize is recomputed silently.

Exit codes:
  0 - Sizes computed
  2 - Invalid input (unparseable size, precondition violation)`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runCompute(cmd, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(computeCmd)
	computeCmd.Flags().StringVar(&minHeapArg, "min-heap", "", "Minimum heap size (e.g. 40m)")
	computeCmd.Flags().StringVar(&initialArg, "initial-heap", "", "Initial heap size (e.g. 100m)")
	computeCmd.Flags().StringVar(&maxHeapArg, "max-heap", "", "Maximum heap size (e.g. 256m)")
	computeCmd.Flags().StringVar(&newSizeArg, "new-size", "", "Initial young generation size")
	computeCmd.Flags().StringVar(&oldSizeArg, "old-size", "", "Initial old generation size")
	computeCmd.Flags().StringVar(&maxNewSizeArg, "max-new-size", "", "Young generation size cap")
	computeCmd.Flags().StringVar(&alignmentArg, "alignment", "", "Heap alignment (power of two)")
	computeCmd.Flags().StringVar(&minDeltaArg, "min-delta", "", "Minimum growth slack")
	computeCmd.Flags().Uint64Var(&newRatioArg, "new-ratio", 0, "Old:young ratio used when young size is derived")
}

// sizeArgs maps compute's size-valued cobra flags to store flag names.
var sizeArgs = []struct {
	cobraName string
	flagName  string
	value     *string
}{
	{"min-heap", models.FlagMinHeapSize, &minHeapArg},
	{"initial-heap", models.FlagInitialHeapSize, &initialArg},
	{"max-heap", models.FlagMaxHeapSize, &maxHeapArg},
	{"new-size", models.FlagNewSize, &newSizeArg},
	{"old-size", models.FlagOldSize, &oldSizeArg},
	{"max-new-size", models.FlagMaxNewSize, &maxNewSizeArg},
	{"alignment", models.FlagHeapAlignment, &alignmentArg},
	{"min-delta", models.FlagMinHeapDeltaBytes, &minDeltaArg},
}

// runCompute executes a sizing pass and returns the process exit code.
func runCompute(cmd *cobra.Command, w io.Writer) int {
	store := flags.NewStore()
	if err := applySizeArgs(cmd, store); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	report, err := computeReport(store)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		out, _ := json.MarshalIndent(report, "", "  ")
		fmt.Fprintln(w, string(out))
	} else {
		fmt.Fprintln(w, formatReportHuman(report))
	}
	return 0
}

// applySizeArgs fixes every explicitly given flag in the store with
// command-line origin.
func applySizeArgs(cmd *cobra.Command, store *flags.Store) error {
	for _, arg := range sizeArgs {
		if !cmd.Flags().Changed(arg.cobraName) {
			continue
		}
		bytes, err := flags.ParseSize(*arg.value)
		if err != nil {
			return fmt.Errorf("--%s: %w", arg.cobraName, err)
		}
		if err := store.SetCommandLine(arg.flagName, bytes); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("new-ratio") {
		if newRatioArg < 1 {
			return fmt.Errorf("--new-ratio must be at least 1")
		}
		if err := store.SetCommandLine(models.FlagNewRatio, newRatioArg); err != nil {
			return err
		}
	}
	return nil
}

// computeReport validates the snapshot, runs the policy, and applies the
// ergonomic write-backs to the store.
func computeReport(store *flags.Store) (models.SizingReport, error) {
	snapshot := store.Snapshot()
	if err := services.ValidateHeapConfiguration(snapshot); err != nil {
		return models.SizingReport{}, err
	}

	policy := services.NewSizingPolicy()
	sizes := policy.Compute(snapshot)
	updates := policy.ErgonomicUpdates(snapshot, sizes)
	store.ApplyErgonomic(updates)

	return models.SizingReport{Config: snapshot, Sizes: sizes, Updates: updates}, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).Width(16)
	originStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// formatReportHuman renders a sizing report for terminal output.
func formatReportHuman(report models.SizingReport) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Heap"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("min"), humanize.IBytes(report.Config.MinHeapSize))
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("initial"), humanize.IBytes(report.Config.InitialHeapSize))
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("max"), humanize.IBytes(report.Config.MaxHeapSize))
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("alignment"), humanize.IBytes(report.Config.HeapAlignment))

	b.WriteString(headerStyle.Render("Young generation"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("min"), humanize.IBytes(report.Sizes.MinYoung))
	fmt.Fprintf(&b, "  %s %s %s\n", labelStyle.Render("initial"),
		humanize.IBytes(report.Sizes.InitialYoung),
		originStyle.Render("("+report.Config.NewSize.Origin.String()+")"))

	b.WriteString(headerStyle.Render("Old generation"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("min"), humanize.IBytes(report.Sizes.MinOld))
	fmt.Fprintf(&b, "  %s %s %s\n", labelStyle.Render("initial"),
		humanize.IBytes(report.Sizes.InitialOld),
		originStyle.Render("("+report.Config.OldSize.Origin.String()+")"))

	for _, u := range report.Updates {
		fmt.Fprintf(&b, "%s\n", originStyle.Render(
			fmt.Sprintf("ergonomic write-back: %s = %s", u.Name, humanize.IBytes(u.Bytes))))
	}
	return strings.TrimRight(b.String(), "\n")
}
