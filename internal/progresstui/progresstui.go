// Package progresstui renders a live progress bar for a batch
// extraction run, adapting the teacher's internal/tui styling
// conventions to a bubbletea progress.Model driven by extract's
// ProgressEvent channel.
package progresstui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/connerohnesorge/docscribe/internal/extract"
	"github.com/connerohnesorge/docscribe/internal/theme"
	"github.com/connerohnesorge/docscribe/internal/tui"
)

// eventMsg wraps one extract.ProgressEvent for the bubbletea loop.
type eventMsg extract.ProgressEvent

// doneMsg signals the progress channel closed.
type doneMsg struct{}

// Model tracks extraction progress for the View/Update loop.
type Model struct {
	bar      progress.Model
	events   <-chan extract.ProgressEvent
	total    int
	done     int
	errors   int
	lastPath string
	finished bool
}

// New creates a Model that consumes events until the channel closes.
func New(events <-chan extract.ProgressEvent) Model {
	th := theme.Current()
	bar := progress.New(progress.WithDefaultGradient())
	bar.EmptyColor = string(th.Muted)
	bar.FullColor = string(th.Success)
	return Model{bar: bar, events: events}
}

func waitForEvent(events <-chan extract.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case eventMsg:
		m.done++
		m.total = msg.Total
		m.lastPath = msg.Path
		if msg.Err != nil {
			m.errors++
		}
		return m, waitForEvent(m.events)
	case doneMsg:
		m.finished = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.finished {
		return ""
	}

	pct := 0.0
	if m.total > 0 {
		pct = float64(m.done) / float64(m.total)
	}

	th := theme.Current()
	status := tui.HelpStyle().Render(
		fmt.Sprintf("%d/%d  %s", m.done, m.total, m.lastPath),
	)
	if m.errors > 0 {
		status += lipgloss.NewStyle().Foreground(th.Error).Render(
			fmt.Sprintf("  (%d errors)", m.errors),
		)
	}

	title := tui.TitleStyle().Render("docscribe extract")
	return title + "\n" + m.bar.ViewAs(pct) + "\n" + status + "\n"
}

// Run drives the progress TUI to completion, blocking until events
// closes or the user quits.
func Run(events <-chan extract.ProgressEvent) error {
	_, err := tea.NewProgram(New(events)).Run()
	return err
}
