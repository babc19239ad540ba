package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"sitemark/internal/stress"
)

type progressModel struct {
	title   string
	events  <-chan stress.Event
	spinner spinner.Model
	prog    progress.Model
	workers []workerItem
	width   int
	done    bool
}

type workerItem struct {
	label  string
	status stress.Status
}

type eventMsg stress.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders one worker row
// per exercise goroutine, fed by the runner's progress events.
func NewProgressModel(title string, workers int, events <-chan stress.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]workerItem, workers)
	for i := range items {
		items[i] = workerItem{
			label:  fmt.Sprintf("worker %02d", i),
			status: stress.StatusQueued,
		}
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		workers: items,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(stress.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.workers) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if m.done {
		header = fmt.Sprintf("done: %s", header)
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 10
	labelWidth := m.width - statusWidth - 4
	if labelWidth < 12 {
		labelWidth = 12
	}

	for _, w := range m.workers {
		label := truncate(w.label, labelWidth)
		status := statusLabel(w.status)
		statusStyled := styleStatus(w.status).Render(fmt.Sprintf("%10s", status))
		fmt.Fprintf(&b, "  %s %s\n", statusStyled, label)
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")

	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev stress.Event) tea.Cmd {
	if ev.Worker < 0 || ev.Worker >= len(m.workers) {
		return nil
	}
	m.workers[ev.Worker].status = ev.Status

	finished := 0
	for _, w := range m.workers {
		if w.status == stress.StatusDone {
			finished++
		}
	}
	return m.prog.SetPercent(float64(finished) / float64(len(m.workers)))
}

func statusLabel(status stress.Status) string {
	switch status {
	case stress.StatusQueued:
		return "queued"
	case stress.StatusRunning:
		return "running"
	case stress.StatusDone:
		return "done"
	default:
		return ""
	}
}

func styleStatus(status stress.Status) lipgloss.Style {
	switch status {
	case stress.StatusDone:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case stress.StatusRunning:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
