package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/SyreeseOfficial/Momentum/internal/dates"
	"github.com/SyreeseOfficial/Momentum/internal/models"
	"github.com/SyreeseOfficial/Momentum/internal/storage"
	"github.com/SyreeseOfficial/Momentum/internal/tui/components/stats"
	"github.com/SyreeseOfficial/Momentum/internal/tui/components/timeline"
	"github.com/SyreeseOfficial/Momentum/internal/tui/components/today"
	"github.com/SyreeseOfficial/Momentum/internal/validation"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateStats
	StateHistory
	StateAddTracker
	StateConfirmDelete
	StateConfirmDeleteRecord
)

// tabCount covers only the cyclable tabs; modal states sit past it.
const tabCount = 3

type TrackerFormModel struct {
	Name string
	Goal string
}

// NewTrackerForm builds the add-tracker form. Validation mirrors the
// CLI's add command so both entry points reject the same inputs.
func NewTrackerForm(fm *TrackerFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(validation.ValidateName),
			huh.NewInput().
				Title("Daily goal").
				Value(&fm.Goal).
				Validate(func(s string) error {
					_, err := validation.ParseGoal(s)
					return err
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

type Model struct {
	store              storage.Provider
	state              SessionState
	keys               KeyMap
	help               help.Model
	todayModel         today.Model
	statsModel         stats.Model
	timelineModel      timeline.Model
	form               *huh.Form
	trackerForm        *TrackerFormModel
	trackerToDeleteID  string
	recordToDeleteDate string
	quitting           bool
	width              int
	height             int
}

func NewModel(store storage.Provider) Model {
	todayKey := dates.Today()
	trackers, err := store.GetAllTrackers()
	if err != nil {
		trackers = []models.Tracker{}
	}
	history, err := store.GetHistory()
	if err != nil {
		history = models.HistoryLog{}
	}

	return Model{
		store:         store,
		state:         StateToday,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		todayModel:    today.New(trackers, 0, 0),
		statsModel:    stats.New(todayKey, trackers, history, 0, 0),
		timelineModel: timeline.New(history, 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.Up, m.keys.Down, m.keys.Enter},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh reloads store state into every component after a mutation.
func (m *Model) refresh() {
	trackers, err := m.store.GetAllTrackers()
	if err != nil {
		return
	}
	history, err := m.store.GetHistory()
	if err != nil {
		return
	}
	m.todayModel.SetTrackers(trackers)
	m.statsModel.SetData(dates.Today(), trackers, history)
	m.timelineModel.SetHistory(history)
}
