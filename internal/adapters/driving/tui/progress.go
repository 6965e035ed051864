// Package tui provides the Bubbletea surfaces of the PluginSmith CLI:
// the generation progress display and the artifact file-tree preview.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pluginsmith-cli/internal/adapters/driving/tui/styles"
)

// StepMsg reports one completed generation step.
type StepMsg struct {
	Label     string
	Completed int
	Total     int
}

// DoneMsg ends the program after generation succeeds.
type DoneMsg struct{}

// FailedMsg ends the program after generation fails.
type FailedMsg struct {
	Err error
}

// ProgressModel renders a spinner plus the list of finished generation
// steps. It implements tea.Model.
type ProgressModel struct {
	styles    *styles.Styles
	title     string
	spinner   spinner.Model
	steps     []string
	completed int
	total     int
	done      bool
	err       error
}

// NewProgressModel creates the progress model for one generation run.
func NewProgressModel(title string, s *styles.Styles) ProgressModel {
	if s == nil {
		s = styles.DefaultStyles()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Title

	return ProgressModel{
		styles:  s,
		title:   title,
		spinner: sp,
	}
}

// Init starts the spinner.
func (m ProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles progress messages and spinner ticks.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StepMsg:
		m.steps = append(m.steps, msg.Label)
		m.completed = msg.Completed
		m.total = msg.Total
		return m, nil

	case DoneMsg:
		m.done = true
		return m, tea.Quit

	case FailedMsg:
		m.done = true
		m.err = msg.Err
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	default:
		return m, nil
	}
}

// View renders the step list and the current state line.
func (m ProgressModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Generating "+m.title) + "\n\n")

	for _, step := range m.steps {
		b.WriteString(m.styles.Success.Render("  ✓ ") + m.styles.Muted.Render(step) + "\n")
	}

	switch {
	case m.err != nil:
		b.WriteString("\n" + m.styles.Error.Render("Generation failed: "+m.err.Error()) + "\n")
	case m.done:
		b.WriteString("\n" + m.styles.Success.Render(fmt.Sprintf("Done (%d files).", m.completed)) + "\n")
	default:
		b.WriteString(fmt.Sprintf("\n  %s %s\n", m.spinner.View(),
			m.styles.Normal.Render(fmt.Sprintf("working... (%d/%d)", m.completed, m.total))))
	}

	return b.String()
}

// Err returns the failure carried by the last FailedMsg, if any.
func (m ProgressModel) Err() error {
	return m.err
}

// RunProgress drives run under a live progress display. The run
// callback executes on its own goroutine and reports steps through the
// progress function it receives.
func RunProgress(title string, run func(progress func(step string, completed, total int)) error) error {
	p := tea.NewProgram(NewProgressModel(title, nil))

	errCh := make(chan error, 1)
	go func() {
		err := run(func(step string, completed, total int) {
			p.Send(StepMsg{Label: step, Completed: completed, Total: total})
		})
		if err != nil {
			p.Send(FailedMsg{Err: err})
		} else {
			p.Send(DoneMsg{})
		}
		errCh <- err
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("progress display failed: %w", err)
	}
	return <-errCh
}
