// ABOUTME: Interactive heap layout explorer as a bubbletea model
// ABOUTME: Adjusts heap size and NewRatio live and re-derives the young/old split

package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/markalston/heap-sizing-analyzer/flags"
	"github.com/markalston/heap-sizing-analyzer/models"
	"github.com/markalston/heap-sizing-analyzer/services"
)

// state represents the current UI state
type state int

const (
	stateAdjust state = iota
	stateInput
)

// heapStep is the increment the arrow keys move the initial heap by.
const heapStep = 16 * 1024 * 1024

// Styles
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4"))
	youngStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	oldStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	originStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).Italic(true)
)

// Explorer is the layout explorer model
type Explorer struct {
	cfg       models.HeapConfiguration
	policy    *services.SizingPolicy
	state     state
	textInput textinput.Model
	err       string
	width     int
}

// New creates an explorer seeded from the default flag set.
func New() *Explorer {
	ti := textinput.New()
	ti.Placeholder = "e.g. 20m"
	ti.CharLimit = 16
	ti.Width = 20

	return &Explorer{
		cfg:       flags.NewStore().Snapshot(),
		policy:    services.NewSizingPolicy(),
		textInput: ti,
		width:     80,
	}
}

func (e *Explorer) Init() tea.Cmd {
	return nil
}

func (e *Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		return e, nil

	case tea.KeyMsg:
		if e.state == stateInput {
			return e.updateInput(msg)
		}
		return e.updateAdjust(msg)
	}
	return e, nil
}

func (e *Explorer) updateAdjust(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return e, tea.Quit

	case "up":
		if e.cfg.InitialHeapSize+heapStep <= e.cfg.MaxHeapSize {
			e.cfg.InitialHeapSize += heapStep
		}
	case "down":
		if e.cfg.InitialHeapSize >= e.cfg.MinHeapSize+heapStep {
			e.cfg.InitialHeapSize -= heapStep
		}
	case "right":
		if e.cfg.NewRatio < 15 {
			e.cfg.NewRatio++
		}
	case "left":
		if e.cfg.NewRatio > 1 {
			e.cfg.NewRatio--
		}

	case "n":
		// Fix NewSize explicitly, as if the operator had set it
		e.state = stateInput
		e.textInput.SetValue("")
		e.textInput.Focus()
		return e, textinput.Blink

	case "d":
		// Back to derived sizing
		e.cfg.NewSize = models.SizeFlag{Bytes: e.cfg.NewSize.Bytes, Origin: models.OriginErgonomic}
	}
	return e, nil
}

func (e *Explorer) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		e.state = stateAdjust
		e.err = ""
		return e, nil

	case "enter":
		bytes, err := flags.ParseSize(e.textInput.Value())
		if err != nil {
			e.err = err.Error()
			return e, nil
		}
		e.cfg.NewSize = models.SizeFlag{Bytes: bytes, Origin: models.OriginCommandLine}
		e.state = stateAdjust
		e.err = ""
		return e, nil
	}

	var cmd tea.Cmd
	e.textInput, cmd = e.textInput.Update(msg)
	return e, cmd
}

func (e *Explorer) View() string {
	sizes := e.policy.Compute(e.cfg)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Heap Layout Explorer"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Initial heap %s   Max heap %s   NewRatio %d   Alignment %s\n\n",
		humanize.IBytes(e.cfg.InitialHeapSize),
		humanize.IBytes(e.cfg.MaxHeapSize),
		e.cfg.NewRatio,
		humanize.IBytes(e.cfg.HeapAlignment))

	b.WriteString(e.renderBar(sizes))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s %s\n",
		youngStyle.Render("young"),
		humanize.IBytes(sizes.InitialYoung),
		originStyle.Render("("+e.cfg.NewSize.Origin.String()+")"))
	fmt.Fprintf(&b, "%s   %s\n\n",
		oldStyle.Render("old"),
		humanize.IBytes(sizes.InitialOld))

	if e.state == stateInput {
		b.WriteString("NewSize: " + e.textInput.View() + "\n")
		if e.err != "" {
			b.WriteString(errorStyle.Render(e.err) + "\n")
		}
		b.WriteString(mutedStyle.Render("enter apply · esc cancel"))
		return b.String()
	}

	b.WriteString(mutedStyle.Render("↑/↓ heap size · ←/→ ratio · n fix NewSize · d derive · q quit"))
	return b.String()
}

// renderBar draws the young/old split proportionally across the terminal.
func (e *Explorer) renderBar(sizes models.GenerationSizes) string {
	barWidth := e.width - 4
	if barWidth < 10 {
		barWidth = 10
	}

	if sizes.InitialYoung+sizes.InitialOld == 0 {
		return mutedStyle.Render(strings.Repeat("░", barWidth))
	}

	youngCells, oldCells := splitCells(barWidth, sizes.InitialYoung, sizes.InitialOld)
	return youngStyle.Render(strings.Repeat("█", youngCells)) +
		oldStyle.Render(strings.Repeat("█", oldCells))
}

// splitCells divides width cells between the generations in proportion to
// their sizes. The ratio is computed in float so exbibyte-scale sizes do not
// overflow the cell arithmetic; a nonzero young share always gets a cell.
func splitCells(width int, young, old uint64) (int, int) {
	youngCells := int(math.Round(float64(width) * float64(young) / (float64(young) + float64(old))))
	if youngCells < 1 && young > 0 {
		youngCells = 1
	}
	if youngCells > width {
		youngCells = width
	}
	return youngCells, width - youngCells
}
