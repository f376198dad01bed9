package dates

import (
	"testing"
	"time"
)

func TestToday_MatchesLocalDate(t *testing.T) {
	want := time.Now().Format("2006-01-02")
	got := Today()
	if got != want {
		t.Errorf("Today() = %q, want %q", got, want)
	}
	if len(got) != 10 {
		t.Errorf("expected zero-padded 10-char key, got %q", got)
	}
}

func TestAddDays_CrossesMonthBoundary(t *testing.T) {
	if got := AddDays("2024-01-31", 1); got != "2024-02-01" {
		t.Errorf("AddDays(2024-01-31, 1) = %q, want 2024-02-01", got)
	}
	if got := AddDays("2024-03-01", -1); got != "2024-02-29" {
		t.Errorf("AddDays(2024-03-01, -1) = %q, want 2024-02-29 (leap year)", got)
	}
}

func TestAddDays_CrossesYearBoundary(t *testing.T) {
	if got := AddDays("2023-12-31", 1); got != "2024-01-01" {
		t.Errorf("AddDays(2023-12-31, 1) = %q, want 2024-01-01", got)
	}
	if got := AddDays("2024-01-01", -1); got != "2023-12-31" {
		t.Errorf("AddDays(2024-01-01, -1) = %q, want 2023-12-31", got)
	}
}

func TestAddDays_LargeNegativeShift(t *testing.T) {
	if got := AddDays("2024-01-07", -6); got != "2024-01-01" {
		t.Errorf("AddDays(2024-01-07, -6) = %q, want 2024-01-01", got)
	}
}

func TestCompare_ChronologicalOrdering(t *testing.T) {
	if Compare("2024-01-01", "2024-01-02") >= 0 {
		t.Error("expected 2024-01-01 < 2024-01-02")
	}
	if Compare("2024-02-01", "2024-01-31") <= 0 {
		t.Error("expected 2024-02-01 > 2024-01-31")
	}
	if Compare("2024-01-15", "2024-01-15") != 0 {
		t.Error("expected equal keys to compare as 0")
	}
}

func TestIsValid_RejectsMalformedKeys(t *testing.T) {
	valid := []string{"2024-01-01", "1999-12-31", "2024-02-29"}
	for _, key := range valid {
		if !IsValid(key) {
			t.Errorf("expected %q to be valid", key)
		}
	}

	invalid := []string{"", "2024-1-1", "2024-13-01", "2023-02-29", "01-01-2024", "today"}
	for _, key := range invalid {
		if IsValid(key) {
			t.Errorf("expected %q to be invalid", key)
		}
	}
}
