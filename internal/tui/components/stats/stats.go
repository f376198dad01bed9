package stats

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SyreeseOfficial/Momentum/internal/analytics"
	"github.com/SyreeseOfficial/Momentum/internal/models"
	"github.com/SyreeseOfficial/Momentum/internal/streak"
)

var windows = []int{analytics.WindowWeek, analytics.WindowFortnite, analytics.WindowMonth}

type KeyMap struct {
	CycleWindow key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		CycleWindow: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "cycle window"),
		),
	}
}

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	upStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	downStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type Model struct {
	today     string
	trackers  []models.Tracker
	history   models.HistoryLog
	windowIdx int
	keys      KeyMap
	width     int
	height    int
}

func New(today string, trackers []models.Tracker, history models.HistoryLog, width, height int) Model {
	return Model{
		today:    today,
		trackers: trackers,
		history:  history,
		keys:     DefaultKeyMap(),
		width:    width,
		height:   height,
	}
}

func (m *Model) SetData(today string, trackers []models.Tracker, history models.HistoryLog) {
	m.today = today
	m.trackers = trackers
	m.history = history
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.CycleWindow) {
			m.windowIdx = (m.windowIdx + 1) % len(windows)
		}
	}
	return m, nil
}

func (m Model) View() string {
	window := windows[m.windowIdx]

	streaks := streak.Compute(m.today, m.trackers, m.history)
	todayVolume := analytics.TodayVolume(m.trackers)
	rolling := analytics.RollingVolume(m.today, m.trackers, m.history, window)
	momentum := analytics.ComputeMomentum(m.today, m.trackers, m.history)
	split := analytics.EffortSplit(m.trackers)

	var b strings.Builder

	b.WriteString(headingStyle.Render("Streaks") + "\n")
	fmt.Fprintf(&b, "  Current: %d day(s)   Best: %d day(s)\n\n", streaks.Current, streaks.Best)

	b.WriteString(headingStyle.Render("Volume") + "\n")
	fmt.Fprintf(&b, "  Today: %d\n", todayVolume)
	fmt.Fprintf(&b, "  Last %d days: %d %s\n\n", window, rolling, dimStyle.Render("(w to cycle)"))

	b.WriteString(headingStyle.Render("Momentum vs yesterday") + "\n")
	arrow := "→"
	style := dimStyle
	switch momentum.Direction {
	case analytics.DirectionUp:
		arrow, style = "↑", upStyle
	case analytics.DirectionDown:
		arrow, style = "↓", downStyle
	}
	fmt.Fprintf(&b, "  %s\n\n", style.Render(fmt.Sprintf("%s %+.0f%%", arrow, momentum.Percent)))

	b.WriteString(headingStyle.Render("Effort split") + "\n")
	if len(split) == 0 {
		b.WriteString(dimStyle.Render("  Nothing logged today") + "\n")
	} else {
		for _, share := range split {
			fmt.Fprintf(&b, "  %3d%%  %s (%d)\n", share.Percentage, share.Name, share.Count)
		}
	}

	return b.String()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
