package timeline

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SyreeseOfficial/Momentum/internal/models"
)

type DeleteRecordMsg struct {
	Date string
}

type Item struct {
	Record models.HistoryRecord
}

func (i Item) Title() string {
	if i.Record.Perfect() {
		return "★ " + i.Record.Date
	}
	return i.Record.Date
}
func (i Item) Description() string {
	parts := make([]string, 0, len(i.Record.Details))
	for _, d := range i.Record.Details {
		parts = append(parts, fmt.Sprintf("%s %d/%d", d.TrackerName, d.Count, d.Goal))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("total %d", i.Record.TotalVolume)
	}
	return fmt.Sprintf("total %d | %s", i.Record.TotalVolume, strings.Join(parts, ", "))
}
func (i Item) FilterValue() string { return i.Record.Date }

type KeyMap struct {
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete day"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(history models.HistoryLog, width, height int) Model {
	l := list.New(toItems(history), list.NewDefaultDelegate(), width, height)
	l.Title = "History"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Delete}
	}

	return Model{list: l, keys: keys}
}

// toItems orders newest first so the top of the list is the most
// recent archived day.
func toItems(history models.HistoryLog) []list.Item {
	sorted := history.SortedByDate()
	items := make([]list.Item, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		items = append(items, Item{Record: sorted[i]})
	}
	return items
}

func (m *Model) SetHistory(history models.HistoryLog) {
	m.list.SetItems(toItems(history))
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
		if key.Matches(msg, m.keys.Delete) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteRecordMsg{Date: i.Record.Date} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No history yet.\n  Days are archived after the first day boundary."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
