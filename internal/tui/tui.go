// Package tui shows progress while a run is in flight.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anne-skydancer/ds-collar-modular/model"
)

// --- Styles ---
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")) // Mauve
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))            // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))           // Red
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// Runner is the work shown by the view.
type Runner interface {
	Run() (model.Summary, error)
	SetProgressCallback(func(current, total int))
}

// --- Messages ---
type summaryMsg struct {
	model.Summary
}

type errorMsg struct {
	err     error
	partial model.Summary
}

func (e errorMsg) Error() string { return e.err.Error() }

// ProgressMsg reports that current of total files have been processed.
type ProgressMsg struct {
	Current, Total int
}

// --- Model ---
type Model struct {
	runner   Runner
	spinner  spinner.Model
	progress progress.Model
	state    state
	current  int
	total    int
	stopping bool
	summary  model.Summary
	err      error
}

type state int

const (
	stateProcessing state = iota
	stateSummary
	stateError
)

func New(runner Runner) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return Model{
		runner:   runner,
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		state:    stateProcessing,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			// Files may be mid-write; finish the run before leaving.
			m.stopping = true
		}
		return m, nil

	case ProgressMsg:
		m.current, m.total = msg.Current, msg.Total
		return m, nil

	case summaryMsg:
		m.state = stateSummary
		m.summary = msg.Summary
		return m, tea.Quit

	case errorMsg:
		m.state = stateError
		m.err = msg.err
		m.summary = msg.partial
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		if m.state == stateProcessing {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		return m, cmd
	}
}

func (m Model) View() string {
	switch m.state {
	case stateProcessing:
		return m.renderProgress()
	case stateError:
		return errorStyle.Render("Error: "+m.err.Error()) + "\n"
	case stateSummary:
		return m.renderSummary()
	default:
		return ""
	}
}

func (m Model) renderProgress() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s Standardizing headers...", m.spinner.View()))
	if m.total > 0 {
		percent := float64(m.current) / float64(m.total)
		b.WriteString(fmt.Sprintf("\n%s [%d/%d]", m.progress.ViewAs(percent), m.current, m.total))
	}
	if m.stopping {
		b.WriteString("\n" + faintStyle.Render("Finishing the current run before exiting..."))
	}
	return b.String()
}

func (m Model) renderSummary() string {
	var b strings.Builder
	if m.summary.Message != "" {
		b.WriteString(headerStyle.Render(m.summary.Message))
		b.WriteString("\n")
	}
	if len(m.summary.Modified) == 0 {
		b.WriteString(faintStyle.Render(fmt.Sprintf("Scanned %d file(s), nothing to change.", m.summary.Scanned)))
	} else {
		verb := "Modified"
		if m.summary.DryRun {
			verb = "Would modify"
		}
		b.WriteString(successStyle.Render(fmt.Sprintf("%s %d of %d file(s).", verb, len(m.summary.Modified), m.summary.Scanned)))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) run() tea.Msg {
	summary, err := m.runner.Run()
	if err != nil {
		return errorMsg{err: err, partial: summary}
	}
	return summaryMsg{Summary: summary}
}

// Summary returns the outcome once the program has exited.
func (m Model) Summary() (model.Summary, error) {
	return m.summary, m.err
}

// Run shows the progress view on stderr while runner works and returns its
// outcome.
func Run(runner Runner) (model.Summary, error) {
	p := tea.NewProgram(New(runner), tea.WithOutput(os.Stderr))
	runner.SetProgressCallback(func(current, total int) {
		p.Send(ProgressMsg{Current: current, Total: total})
	})
	final, err := p.Run()
	if err != nil {
		return model.Summary{}, fmt.Errorf("error running progress view: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return model.Summary{}, fmt.Errorf("unexpected progress view model %T", final)
	}
	return m.Summary()
}
