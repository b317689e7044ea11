// Package tui provides the Bubble Tea terminal timer.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wolftimer/internal/core/model"
	"wolftimer/internal/core/session"
)

const (
	defaultBarWidth = 40
	labelColumn     = 12
	timeColumn      = 7
)

type tickMsg time.Time

// Model implements the terminal timer. It owns its session state; ticks and
// key presses are both handled on the Bubble Tea update loop.
type Model struct {
	state       *session.State
	interval    time.Duration
	questionBar progress.Model
	blockBar    progress.Model
	width       int
	completed   bool
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Width(labelColumn)
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Width(timeColumn)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	doneStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00B400"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	boxStyle    = lipgloss.NewStyle().Padding(1, 2)
)

// NewModel constructs a terminal timer for config ticking every interval.
func NewModel(config model.SessionConfig, interval time.Duration) *Model {
	if interval <= 0 {
		interval = time.Second
	}
	return &Model{
		state:       session.New(config),
		interval:    interval,
		questionBar: progress.New(progress.WithSolidFill("#00B400"), progress.WithoutPercentage(), progress.WithWidth(defaultBarWidth)),
		blockBar:    progress.New(progress.WithSolidFill("#0078D7"), progress.WithoutPercentage(), progress.WithWidth(defaultBarWidth)),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.resizeBars()
		return m, nil
	case tickMsg:
		if m.completed {
			return m, nil
		}
		if m.state.Tick() == session.SignalCompleted {
			m.completed = true
			m.state.Stop()
			return m, nil
		}
		return m, m.tick()
	case tea.KeyMsg:
		if m.completed || msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch msg.String() {
		case " ", "p":
			if !m.state.IsStopped() {
				m.state.TogglePause()
			}
		case "s":
			if m.state.IsStopped() {
				m.state.Start()
			} else {
				m.state.Stop()
			}
		case "r":
			m.state.Reset()
		case "q":
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	snapshot := m.state.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Wolf-Timer"))
	b.WriteString("\n\n")
	b.WriteString(m.row(
		fmt.Sprintf("Q: %d/%d", snapshot.CurrentQuestion, snapshot.Config.NumQuestionsPerBlock),
		session.FormatTime(snapshot.QuestionElapsedSeconds),
		m.questionBar.ViewAs(float64(snapshot.QuestionProgress)/100),
	))
	b.WriteString("\n")
	b.WriteString(m.row(
		fmt.Sprintf("Block %d/%d", snapshot.CurrentBlock, snapshot.Config.NumBlocks),
		session.FormatTime(snapshot.BlockRemainingSeconds),
		m.blockBar.ViewAs(float64(snapshot.BlockProgress)/100),
	))
	b.WriteString("\n\n")

	if m.completed {
		b.WriteString(doneStyle.Render("All blocks completed!"))
		b.WriteString("\n")
		b.WriteString(footerStyle.Render("press any key to exit"))
	} else {
		b.WriteString(statusStyle.Render(statusText(snapshot)))
		b.WriteString("\n")
		b.WriteString(footerStyle.Render("space/p pause  s start/stop  r reset  q quit"))
	}
	return boxStyle.Render(b.String())
}

// Completed reports whether every block has run out.
func (m *Model) Completed() bool {
	return m.completed
}

func (m *Model) row(label, clock, bar string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), timeStyle.Render(clock), bar)
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) resizeBars() {
	width := m.width - labelColumn - timeColumn - boxStyle.GetHorizontalFrameSize()
	if width > defaultBarWidth*2 {
		width = defaultBarWidth * 2
	}
	if width < 10 {
		width = 10
	}
	m.questionBar.Width = width
	m.blockBar.Width = width
}

func statusText(snapshot session.Snapshot) string {
	switch {
	case snapshot.Stopped:
		return "stopped"
	case snapshot.Paused:
		return "paused"
	default:
		return "running"
	}
}
