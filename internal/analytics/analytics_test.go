package analytics

import (
	"testing"

	"github.com/SyreeseOfficial/Momentum/internal/models"
)

func TestTodayVolume_SumsAllCounts(t *testing.T) {
	trackers := []models.Tracker{
		{Name: "A", Count: 3},
		{Name: "B", Count: 0},
		{Name: "C", Count: 7, IsActive: false},
	}
	if got := TodayVolume(trackers); got != 10 {
		t.Errorf("TodayVolume = %d, want 10 (inactive trackers still count)", got)
	}
	if got := TodayVolume(nil); got != 0 {
		t.Errorf("TodayVolume(nil) = %d, want 0", got)
	}
}

func TestRollingVolume_SevenDayWindow(t *testing.T) {
	trackers := []models.Tracker{{Name: "A", Count: 2}}
	history := models.HistoryLog{
		{Date: "2024-01-12", TotalVolume: 10},  // 3 days ago, inside window
		{Date: "2024-01-05", TotalVolume: 100}, // 10 days ago, outside
	}

	if got := RollingVolume("2024-01-15", trackers, history, 7); got != 12 {
		t.Errorf("RollingVolume = %d, want 12", got)
	}
}

func TestRollingVolume_WindowBoundaries(t *testing.T) {
	history := models.HistoryLog{
		{Date: "2024-01-09", TotalVolume: 1},  // exactly splitDate, included
		{Date: "2024-01-08", TotalVolume: 10}, // one before, excluded
		{Date: "2024-01-15", TotalVolume: 50}, // today's own record, excluded (live counts used)
	}
	trackers := []models.Tracker{{Name: "A", Count: 4}}

	if got := RollingVolume("2024-01-15", trackers, history, 7); got != 5 {
		t.Errorf("RollingVolume = %d, want 5", got)
	}
}

func TestRollingVolume_SingleDayWindowIsTodayOnly(t *testing.T) {
	history := models.HistoryLog{{Date: "2024-01-14", TotalVolume: 9}}
	trackers := []models.Tracker{{Name: "A", Count: 3}}

	if got := RollingVolume("2024-01-15", trackers, history, 1); got != 3 {
		t.Errorf("RollingVolume(window=1) = %d, want 3", got)
	}
}

func TestComputeMomentum_FreshStartAfterZeroDay(t *testing.T) {
	trackers := []models.Tracker{{Name: "A", Count: 4}}

	m := ComputeMomentum("2024-01-15", trackers, nil)
	if m.Percent != 100 {
		t.Errorf("Percent = %v, want 100 when yesterday was zero and today is not", m.Percent)
	}
	if m.Direction != DirectionUp {
		t.Errorf("Direction = %q, want up", m.Direction)
	}
}

func TestComputeMomentum_BothZero(t *testing.T) {
	m := ComputeMomentum("2024-01-15", nil, nil)
	if m.Percent != 0 {
		t.Errorf("Percent = %v, want 0", m.Percent)
	}
	if m.Direction != DirectionEqual {
		t.Errorf("Direction = %q, want equal", m.Direction)
	}
}

func TestComputeMomentum_SignedPercentage(t *testing.T) {
	history := models.HistoryLog{{Date: "2024-01-14", TotalVolume: 10}}

	down := ComputeMomentum("2024-01-15", []models.Tracker{{Count: 5}}, history)
	if down.Percent != -50 {
		t.Errorf("Percent = %v, want -50", down.Percent)
	}
	if down.Direction != DirectionDown {
		t.Errorf("Direction = %q, want down", down.Direction)
	}

	up := ComputeMomentum("2024-01-15", []models.Tracker{{Count: 25}}, history)
	if up.Percent != 150 {
		t.Errorf("Percent = %v, want 150 (unclamped)", up.Percent)
	}
	if up.Direction != DirectionUp {
		t.Errorf("Direction = %q, want up", up.Direction)
	}
}

func TestEffortSplit_EmptyWhenNoVolume(t *testing.T) {
	trackers := []models.Tracker{{Name: "A", Count: 0}, {Name: "B", Count: 0}}
	if got := EffortSplit(trackers); len(got) != 0 {
		t.Errorf("expected empty split at zero volume, got %v", got)
	}
}

func TestEffortSplit_RoundedAndSortedDescending(t *testing.T) {
	trackers := []models.Tracker{
		{Name: "B", Count: 1},
		{Name: "A", Count: 3},
	}

	shares := EffortSplit(trackers)
	if len(shares) != 2 {
		t.Fatalf("expected 2 shares, got %d", len(shares))
	}
	if shares[0].Name != "A" || shares[0].Percentage != 75 {
		t.Errorf("first share = %+v, want A at 75", shares[0])
	}
	if shares[1].Name != "B" || shares[1].Percentage != 25 {
		t.Errorf("second share = %+v, want B at 25", shares[1])
	}
}

func TestEffortSplit_TiesKeepInputOrder(t *testing.T) {
	trackers := []models.Tracker{
		{Name: "First", Count: 2},
		{Name: "Second", Count: 2},
	}

	shares := EffortSplit(trackers)
	if shares[0].Name != "First" || shares[1].Name != "Second" {
		t.Errorf("stable sort expected to keep input order on ties, got %v", shares)
	}
}

func TestEffortSplit_RoundingNeedNotSumTo100(t *testing.T) {
	trackers := []models.Tracker{
		{Name: "A", Count: 1},
		{Name: "B", Count: 1},
		{Name: "C", Count: 1},
	}

	shares := EffortSplit(trackers)
	sum := 0
	for _, s := range shares {
		if s.Percentage != 33 {
			t.Errorf("share %s = %d, want 33", s.Name, s.Percentage)
		}
		sum += s.Percentage
	}
	if sum != 99 {
		t.Errorf("independently rounded shares sum = %d, want 99 here", sum)
	}
}
