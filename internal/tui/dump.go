// Package tui provides the terminal user interface for grove.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grovekit/grove/internal/export"
)

// artifactMsg reports one finished table export.
type artifactMsg export.Artifact

// DumpModel drives a batch table export, one table at a time, and shows
// per-table progress.
type DumpModel struct {
	source  string
	outDir  string
	tables  []string
	next    int
	results []export.Artifact
	done    bool

	spinner spinner.Model

	okStyle      lipgloss.Style
	failStyle    lipgloss.Style
	pendingStyle lipgloss.Style
}

// NewDump creates a DumpModel that exports the given tables from source
// into outDir.
func NewDump(source, outDir string, tables []string) DumpModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))

	return DumpModel{
		source:  source,
		outDir:  outDir,
		tables:  tables,
		spinner: sp,

		okStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		failStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		pendingStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Results returns the artifacts collected so far. The caller reads this
// from the final model after the program exits.
func (m DumpModel) Results() []export.Artifact {
	return m.results
}

// Init implements tea.Model.
func (m DumpModel) Init() tea.Cmd {
	if len(m.tables) == 0 {
		return tea.Quit
	}
	return tea.Batch(m.spinner.Tick, m.exportNext())
}

// exportNext runs the export for the current table off the update loop.
func (m DumpModel) exportNext() tea.Cmd {
	table := m.tables[m.next]
	source, outDir := m.source, m.outDir
	return func() tea.Msg {
		artifacts := export.ExportAll(context.Background(), source, outDir, []string{table})
		return artifactMsg(artifacts[0])
	}
}

// Update implements tea.Model.
func (m DumpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil

	case artifactMsg:
		m.results = append(m.results, export.Artifact(msg))
		m.next++
		if m.next >= len(m.tables) {
			m.done = true
			return m, tea.Quit
		}
		return m, m.exportNext()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m DumpModel) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Exporting %s\n\n", m.source)

	for i, table := range m.tables {
		switch {
		case i < len(m.results):
			a := m.results[i]
			if a.OK {
				fmt.Fprintf(&b, "  %s %s → %s, %s\n", m.okStyle.Render("✓"), table, a.CSVPath, a.JSONPath)
			} else {
				fmt.Fprintf(&b, "  %s %s (no artifacts written)\n", m.failStyle.Render("✗"), table)
			}
		case i == m.next && !m.done:
			fmt.Fprintf(&b, "  %s %s\n", m.spinner.View(), table)
		default:
			fmt.Fprintf(&b, "  %s %s\n", m.pendingStyle.Render("·"), table)
		}
	}

	return b.String()
}
