package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/SyreeseOfficial/Momentum/internal/models"
	"github.com/SyreeseOfficial/Momentum/internal/tui/components/timeline"
	"github.com/SyreeseOfficial/Momentum/internal/tui/components/today"
	"github.com/SyreeseOfficial/Momentum/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Add Tracker State
	if m.state == StateAddTracker {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateToday
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			goal, err := validation.ParseGoal(m.trackerForm.Goal)
			if err != nil {
				// Re-open the form so the value can be corrected
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			existing, _ := m.store.GetAllTrackers()
			tracker := models.Tracker{
				ID:        uuid.New().String(),
				Name:      m.trackerForm.Name,
				DailyGoal: goal,
				SortOrder: len(existing),
				IsActive:  true,
			}
			if err := m.store.AddTracker(tracker); err == nil {
				m.refresh()
				m.state = StateToday
			} else {
				// Stay in the form so the name can be corrected
				m.form.State = huh.StateNormal
			}
		case huh.StateAborted:
			m.state = StateToday
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Delete Tracker State
	if m.state == StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if err := m.store.DeleteTracker(m.trackerToDeleteID); err == nil {
					m.refresh()
				}
				m.trackerToDeleteID = ""
				m.state = StateToday
			case "n", "N", "esc":
				m.trackerToDeleteID = ""
				m.state = StateToday
			}
		}
		return m, nil
	}

	// Handle Confirm Delete History Record State
	if m.state == StateConfirmDeleteRecord {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if err := m.store.DeleteHistoryRecord(m.recordToDeleteDate); err == nil {
					m.refresh()
				}
				m.recordToDeleteDate = ""
				m.state = StateHistory
			case "n", "N", "esc":
				m.recordToDeleteDate = ""
				m.state = StateHistory
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		h, v := docStyle.GetFrameSize()
		contentHeight := msg.Height - v - 4 // tabs + help rows
		m.todayModel.SetSize(msg.Width-h, contentHeight)
		m.statsModel.SetSize(msg.Width-h, contentHeight)
		m.timelineModel.SetSize(msg.Width-h, contentHeight)

	case today.IncrementMsg:
		m.adjustCount(msg.ID, 1)
		return m, nil

	case today.DecrementMsg:
		m.adjustCount(msg.ID, -1)
		return m, nil

	case today.AddTrackerMsg:
		m.trackerForm = &TrackerFormModel{Goal: "1"}
		m.form = NewTrackerForm(m.trackerForm)
		m.state = StateAddTracker
		return m, m.form.Init()

	case today.ToggleActiveMsg:
		if tracker, err := m.store.GetTracker(msg.ID); err == nil {
			tracker.IsActive = !tracker.IsActive
			if err := m.store.UpdateTracker(tracker); err == nil {
				m.refresh()
			}
		}
		return m, nil

	case today.DeleteTrackerMsg:
		m.trackerToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case timeline.DeleteRecordMsg:
		m.recordToDeleteDate = msg.Date
		m.state = StateConfirmDeleteRecord
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateToday:
		m.todayModel, cmd = m.todayModel.Update(msg)
	case StateStats:
		m.statsModel, cmd = m.statsModel.Update(msg)
	case StateHistory:
		m.timelineModel, cmd = m.timelineModel.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// adjustCount applies a live count delta, clamping at zero the same
// way the CLI's down command does.
func (m *Model) adjustCount(id string, delta int) {
	tracker, err := m.store.GetTracker(id)
	if err != nil {
		return
	}
	tracker.Count += delta
	if tracker.Count < 0 {
		tracker.Count = 0
	}
	if err := m.store.UpdateTracker(tracker); err == nil {
		m.refresh()
	}
}
