package today

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SyreeseOfficial/Momentum/internal/models"
)

type IncrementMsg struct {
	ID string
}

type DecrementMsg struct {
	ID string
}

type AddTrackerMsg struct{}

type ToggleActiveMsg struct {
	ID string
}

type DeleteTrackerMsg struct {
	ID string
}

type Item struct {
	Tracker models.Tracker
}

func (i Item) Title() string {
	if !i.Tracker.IsActive {
		return "⏸ " + i.Tracker.Name + " (paused)"
	}
	if i.Tracker.GoalMet() {
		return "✓ " + i.Tracker.Name
	}
	return i.Tracker.Name
}
func (i Item) Description() string {
	return fmt.Sprintf("%d / %d today", i.Tracker.Count, i.Tracker.DailyGoal)
}
func (i Item) FilterValue() string { return i.Tracker.Name }

type KeyMap struct {
	Increment key.Binding
	Decrement key.Binding
	Add       key.Binding
	Toggle    key.Binding
	Delete    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increment: key.NewBinding(
			key.WithKeys("enter", "+"),
			key.WithHelp("enter/+", "count up"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "count down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause/resume"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(trackers []models.Tracker, width, height int) Model {
	items := make([]list.Item, len(trackers))
	for i, t := range trackers {
		items[i] = Item{Tracker: t}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Today"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Increment, keys.Decrement, keys.Add, keys.Toggle, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Increment, keys.Decrement, keys.Add, keys.Toggle, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetTrackers(trackers []models.Tracker) {
	items := make([]list.Item, len(trackers))
	for i, t := range trackers {
		items[i] = Item{Tracker: t}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Increment):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return IncrementMsg{ID: i.Tracker.ID} }
			}
		case key.Matches(msg, m.keys.Decrement):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DecrementMsg{ID: i.Tracker.ID} }
			}
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddTrackerMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleActiveMsg{ID: i.Tracker.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteTrackerMsg{ID: i.Tracker.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No trackers yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
