package streak

import (
	"testing"

	"github.com/SyreeseOfficial/Momentum/internal/models"
)

func perfectRecord(date string) models.HistoryRecord {
	return models.HistoryRecord{
		Date:        date,
		TotalVolume: 5,
		Details:     []models.HistoryDetail{{TrackerName: "Pushups", Count: 5, Goal: 5}},
	}
}

func missedRecord(date string) models.HistoryRecord {
	return models.HistoryRecord{
		Date:        date,
		TotalVolume: 2,
		Details:     []models.HistoryDetail{{TrackerName: "Pushups", Count: 2, Goal: 5}},
	}
}

func TestCompute_EmptyInputs(t *testing.T) {
	s := Compute("2024-01-07", nil, nil)
	if s.Current != 0 || s.Best != 0 {
		t.Errorf("expected 0/0 for empty inputs, got %+v", s)
	}
}

func TestCompute_ThreeDayRunEndingToday(t *testing.T) {
	trackers := []models.Tracker{{Name: "Pushups", Count: 5, DailyGoal: 5, IsActive: true}}
	history := models.HistoryLog{
		perfectRecord("2024-01-05"),
		perfectRecord("2024-01-06"),
	}

	s := Compute("2024-01-07", trackers, history)
	if s.Current != 3 {
		t.Errorf("Current = %d, want 3", s.Current)
	}
	if s.Best != 3 {
		t.Errorf("Best = %d, want 3", s.Best)
	}
}

func TestCompute_UnfinishedTodayKeepsStreakAlive(t *testing.T) {
	// Today's goal not met yet; yesterday and the day before were perfect.
	trackers := []models.Tracker{{Name: "Pushups", Count: 1, DailyGoal: 5, IsActive: true}}
	history := models.HistoryLog{
		perfectRecord("2024-01-05"),
		perfectRecord("2024-01-06"),
	}

	s := Compute("2024-01-07", trackers, history)
	if s.Current != 2 {
		t.Errorf("Current = %d, want 2 (today pending does not break the run)", s.Current)
	}
}

func TestCompute_MissedYesterdayResetsCurrent(t *testing.T) {
	trackers := []models.Tracker{{Name: "Pushups", Count: 0, DailyGoal: 5, IsActive: true}}
	history := models.HistoryLog{
		perfectRecord("2024-01-03"),
		perfectRecord("2024-01-04"),
		missedRecord("2024-01-06"),
	}

	s := Compute("2024-01-07", trackers, history)
	if s.Current != 0 {
		t.Errorf("Current = %d, want 0", s.Current)
	}
	if s.Best != 2 {
		t.Errorf("Best = %d, want 2 from the older run", s.Best)
	}
}

func TestCompute_GapByAbsenceBreaksStreak(t *testing.T) {
	// 2024-01-05 was never archived at all (app closed). Absence is
	// not-perfect, same as an explicit missed record.
	trackers := []models.Tracker{{Name: "Pushups", Count: 5, DailyGoal: 5, IsActive: true}}
	history := models.HistoryLog{
		perfectRecord("2024-01-03"),
		perfectRecord("2024-01-04"),
		perfectRecord("2024-01-06"),
	}

	s := Compute("2024-01-07", trackers, history)
	if s.Current != 2 {
		t.Errorf("Current = %d, want 2 (06 + today)", s.Current)
	}
	if s.Best != 2 {
		t.Errorf("Best = %d, want 2", s.Best)
	}
}

func TestCompute_ZeroActiveTrackersNeverPerfect(t *testing.T) {
	trackers := []models.Tracker{{Name: "Paused", Count: 9, DailyGoal: 5, IsActive: false}}

	s := Compute("2024-01-07", trackers, nil)
	if s.Current != 0 {
		t.Errorf("Current = %d, want 0 when no trackers are active", s.Current)
	}
}

func TestCompute_InactiveTrackersIgnoredForTodayPerfection(t *testing.T) {
	trackers := []models.Tracker{
		{Name: "Active", Count: 5, DailyGoal: 5, IsActive: true},
		{Name: "Paused", Count: 0, DailyGoal: 5, IsActive: false},
	}

	s := Compute("2024-01-07", trackers, nil)
	if s.Current != 1 {
		t.Errorf("Current = %d, want 1 (paused tracker does not spoil today)", s.Current)
	}
}

func TestCompute_EmptyDetailsRecordNotPerfect(t *testing.T) {
	history := models.HistoryLog{
		{Date: "2024-01-06", TotalVolume: 0, Details: nil},
	}

	s := Compute("2024-01-07", nil, history)
	if s.Current != 0 || s.Best != 0 {
		t.Errorf("a record with no details must not be perfect, got %+v", s)
	}
}

func TestCompute_BestNeverBelowCurrent(t *testing.T) {
	// Live streak longer than anything visible in history records.
	trackers := []models.Tracker{{Name: "Pushups", Count: 5, DailyGoal: 5, IsActive: true}}
	history := models.HistoryLog{
		perfectRecord("2024-01-04"),
		perfectRecord("2024-01-05"),
		perfectRecord("2024-01-06"),
		missedRecord("2024-01-01"),
	}

	s := Compute("2024-01-07", trackers, history)
	if s.Best < s.Current {
		t.Errorf("Best (%d) must be >= Current (%d)", s.Best, s.Current)
	}
	if s.Current != 4 {
		t.Errorf("Current = %d, want 4", s.Current)
	}
}

func TestCompute_BestSpansMonthBoundary(t *testing.T) {
	history := models.HistoryLog{
		perfectRecord("2024-01-31"),
		perfectRecord("2024-02-01"),
		perfectRecord("2024-02-02"),
	}

	s := Compute("2024-03-15", nil, history)
	if s.Best != 3 {
		t.Errorf("Best = %d, want 3 across the month boundary", s.Best)
	}
	if s.Current != 0 {
		t.Errorf("Current = %d, want 0 (run ended long ago)", s.Current)
	}
}
