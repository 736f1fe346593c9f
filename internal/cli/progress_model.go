package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/beachhead/internal/cli/formatter"
	"github.com/alexanderramin/beachhead/internal/discovery"
	"github.com/alexanderramin/beachhead/internal/domain"
)

type progressMsg struct {
	label   string
	percent int
}

type pipelineDoneMsg struct {
	result *discovery.DiscoveryResult
	err    error
}

// progressModel renders the pipeline's phase milestones while the engine
// runs in the background.
type progressModel struct {
	spinner spinner.Model
	cancel  context.CancelFunc

	label   string
	percent int
	done    bool

	result *discovery.DiscoveryResult
	err    error
}

func newProgressModel(cancel context.CancelFunc) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	return progressModel{
		spinner: s,
		cancel:  cancel,
		label:   "Starting discovery",
	}
}

func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.label = msg.label
		m.percent = msg.percent
		return m, nil

	case pipelineDoneMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			m.cancel()
			return m, nil
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("\n  %s %s\n  %s\n\n",
		m.spinner.View(),
		formatter.Bold(m.label),
		formatter.RenderProgress(float64(m.percent)/100, 30),
	)
}

// runDiscoveryTUI runs the pipeline behind an animated progress display.
// Ctrl+C cancels the engine's context; the pipeline's own error surfaces
// through the returned values.
func runDiscoveryTUI(ctx context.Context, runner DiscoveryRunner, dctx domain.DiscoveryContext) (*discovery.DiscoveryResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newProgressModel(cancel))

	go func() {
		result, err := runner.RunDiscovery(ctx, dctx, func(label string, percent int) {
			p.Send(progressMsg{label: label, percent: percent})
		})
		p.Send(pipelineDoneMsg{result: result, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("progress display: %w", err)
	}

	m := final.(progressModel)
	return m.result, m.err
}
