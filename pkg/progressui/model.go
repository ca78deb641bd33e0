package progressui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jaspreet-dot-casa/arch-apps/pkg/runner"
)

// batchModel is a Bubble Tea model for batch run progress. Each unit
// gets one row that moves through pending, running, and a final state.
type batchModel struct {
	runner *runner.Runner
	units  []runner.Unit

	spinner      spinner.Model
	progressBar  progress.Model
	rows         []unitRow
	progressChan chan runner.ProgressEvent
	summary      *runner.Summary
	runErr       error
	completed    int
	done         bool
	quitting     bool

	width  int
	height int
}

type unitRow struct {
	display string
	status  runner.UnitStatus
	message string
}

func newBatchModel(r *runner.Runner, units []runner.Unit) batchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	rows := make([]unitRow, len(units))
	for i, unit := range units {
		rows[i] = unitRow{display: unit.DisplayName, status: runner.StatusPending}
	}

	return batchModel{
		runner:       r,
		units:        units,
		spinner:      s,
		progressBar:  p,
		rows:         rows,
		progressChan: make(chan runner.ProgressEvent, 100),
	}
}

func (m batchModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.startRun(),
		m.waitForProgress(),
	)
}

func (m batchModel) startRun() tea.Cmd {
	return func() tea.Msg {
		// Progress callback that sends to channel
		m.runner.SetProgress(func(e runner.ProgressEvent) {
			m.progressChan <- e
		})

		summary, err := m.runner.Run(context.Background(), m.units)

		// Signal completion
		close(m.progressChan)

		return runCompleteMsg{summary: summary, err: err}
	}
}

func (m batchModel) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-m.progressChan
		if !ok {
			return nil // Channel closed
		}
		return runProgressMsg(event)
	}
}

func (m batchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progressBar.Width = min(msg.Width-10, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progressBar.Update(msg)
		m.progressBar = progressModel.(progress.Model)
		return m, cmd

	case runProgressMsg:
		if msg.Stage == runner.StageUnit && msg.Index >= 1 && msg.Index <= len(m.rows) {
			row := &m.rows[msg.Index-1]
			row.status = msg.Status
			row.message = msg.Message
			if msg.Status != runner.StatusRunning {
				m.completed++
			}
		}
		// Continue listening for more progress events
		return m, tea.Batch(
			m.waitForProgress(),
			m.progressBar.SetPercent(float64(m.completed)/float64(len(m.units))),
		)

	case runCompleteMsg:
		m.done = true
		m.summary = msg.summary
		m.runErr = msg.err
		return m, tea.Quit
	}

	return m, nil
}

func (m batchModel) View() string {
	if m.quitting && !m.done {
		return "\n  Cancelling...\n"
	}

	var s strings.Builder

	// Header
	header := titleStyle.Render(fmt.Sprintf(" Running %d install scripts ", len(m.units)))
	s.WriteString("\n")
	s.WriteString(header)
	s.WriteString("\n\n")

	// Progress bar
	barView := m.progressBar.ViewAs(float64(m.completed) / float64(len(m.units)))
	s.WriteString(progressBarStyle.Render(barView))
	s.WriteString(fmt.Sprintf(" %d/%d", m.completed, len(m.units)))
	s.WriteString("\n\n")

	// Unit rows
	for _, row := range m.rows {
		icon := dimStyle.Render("  ")
		nameStyle := dimStyle

		switch row.status {
		case runner.StatusRunning:
			icon = activeStyle.Render("  ")
			nameStyle = lipgloss.NewStyle()
		case runner.StatusSucceeded:
			icon = successStyle.Render("  ")
			nameStyle = lipgloss.NewStyle()
		case runner.StatusFailed:
			icon = errorStyle.Render("  ")
			nameStyle = errorStyle
		case runner.StatusSkipped:
			icon = dimStyle.Render("  ")
		}

		s.WriteString(icon)
		s.WriteString(nameStyle.Render(row.display))
		s.WriteString("\n")

		// Show the failure reason under the row
		if row.status == runner.StatusFailed && row.message != "" {
			s.WriteString("     ")
			s.WriteString(dimStyle.Render(row.message))
			s.WriteString("\n")
		}
	}

	// Spinner if still running
	if !m.done {
		s.WriteString("\n")
		s.WriteString("  ")
		s.WriteString(m.spinner.View())
		s.WriteString(" Working...")
		s.WriteString("\n")
		s.WriteString("\n")
		s.WriteString(dimStyle.Render("  Press Ctrl+C to cancel"))
	}
	s.WriteString("\n")

	return s.String()
}

// Run drives the batch through the progress view and returns its
// summary. A nil summary with a nil error means the user quit before
// the run finished.
func Run(r *runner.Runner, units []runner.Unit) (*runner.Summary, error) {
	p := tea.NewProgram(newBatchModel(r, units))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(batchModel)
	if !ok {
		return nil, nil
	}
	if m.runErr != nil {
		return nil, m.runErr
	}
	return m.summary, nil
}
