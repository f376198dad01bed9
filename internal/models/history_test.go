package models

import "testing"

func TestHistoryLog_UpsertEnforcesDateUniqueness(t *testing.T) {
	var log HistoryLog

	log = log.Upsert(HistoryRecord{Date: "2024-01-01", TotalVolume: 5})
	log = log.Upsert(HistoryRecord{Date: "2024-01-02", TotalVolume: 7})
	log = log.Upsert(HistoryRecord{Date: "2024-01-01", TotalVolume: 9})

	if len(log) != 2 {
		t.Fatalf("expected 2 records after duplicate upsert, got %d", len(log))
	}

	r, ok := log.Find("2024-01-01")
	if !ok {
		t.Fatal("expected record for 2024-01-01")
	}
	if r.TotalVolume != 9 {
		t.Errorf("upsert should overwrite, TotalVolume = %d, want 9", r.TotalVolume)
	}
}

func TestHistoryLog_DeleteRemovesOnlyTarget(t *testing.T) {
	log := HistoryLog{
		{Date: "2024-01-01"},
		{Date: "2024-01-02"},
	}

	log = log.Delete("2024-01-01")
	if len(log) != 1 {
		t.Fatalf("expected 1 record, got %d", len(log))
	}
	if _, ok := log.Find("2024-01-01"); ok {
		t.Error("deleted record still present")
	}
	if _, ok := log.Find("2024-01-02"); !ok {
		t.Error("unrelated record removed")
	}

	// Deleting a missing date is a no-op
	log = log.Delete("2024-12-31")
	if len(log) != 1 {
		t.Errorf("delete of missing date changed the log")
	}
}

func TestHistoryLog_SortedByDate(t *testing.T) {
	log := HistoryLog{
		{Date: "2024-02-01"},
		{Date: "2023-12-31"},
		{Date: "2024-01-15"},
	}

	sorted := log.SortedByDate()
	want := []string{"2023-12-31", "2024-01-15", "2024-02-01"}
	for i, d := range want {
		if sorted[i].Date != d {
			t.Errorf("sorted[%d] = %q, want %q", i, sorted[i].Date, d)
		}
	}

	// Original order untouched
	if log[0].Date != "2024-02-01" {
		t.Error("SortedByDate mutated the receiver")
	}
}

func TestHistoryRecord_Perfect(t *testing.T) {
	empty := HistoryRecord{Date: "2024-01-01"}
	if empty.Perfect() {
		t.Error("record with no details must not be perfect")
	}

	met := HistoryRecord{
		Date: "2024-01-01",
		Details: []HistoryDetail{
			{TrackerName: "A", Count: 5, Goal: 5},
			{TrackerName: "B", Count: 8, Goal: 3},
		},
	}
	if !met.Perfect() {
		t.Error("expected record with all goals met to be perfect")
	}

	missed := HistoryRecord{
		Date: "2024-01-01",
		Details: []HistoryDetail{
			{TrackerName: "A", Count: 5, Goal: 5},
			{TrackerName: "B", Count: 2, Goal: 3},
		},
	}
	if missed.Perfect() {
		t.Error("one missed goal must spoil the day")
	}
}

func TestTracker_GoalMet(t *testing.T) {
	if (Tracker{Count: 4, DailyGoal: 5}).GoalMet() {
		t.Error("4/5 should not meet the goal")
	}
	if !(Tracker{Count: 5, DailyGoal: 5}).GoalMet() {
		t.Error("5/5 should meet the goal")
	}
}
