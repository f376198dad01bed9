package export

import (
	"strings"
	"testing"

	"github.com/SyreeseOfficial/Momentum/internal/models"
)

func TestWrite_HeaderAndRowPerDetail(t *testing.T) {
	history := models.HistoryLog{
		{
			Date:        "2024-01-02",
			TotalVolume: 8,
			Details: []models.HistoryDetail{
				{TrackerName: "Pushups", Count: 3, Goal: 5},
				{TrackerName: "Reading", Count: 5, Goal: 5},
			},
		},
		{
			Date:        "2024-01-01",
			TotalVolume: 2,
			Details: []models.HistoryDetail{
				{TrackerName: "Pushups", Count: 2, Goal: 5},
			},
		},
	}

	var buf strings.Builder
	if err := Write(&buf, history); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "Date,Name,Count" {
		t.Errorf("header = %q, want Date,Name,Count", lines[0])
	}
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}

	// Rows are ordered by date
	if lines[1] != "2024-01-01,Pushups,2" {
		t.Errorf("first row = %q", lines[1])
	}
	if lines[2] != "2024-01-02,Pushups,3" {
		t.Errorf("second row = %q", lines[2])
	}
	if lines[3] != "2024-01-02,Reading,5" {
		t.Errorf("third row = %q", lines[3])
	}
}

func TestWrite_QuotesNamesContainingCommas(t *testing.T) {
	history := models.HistoryLog{
		{
			Date: "2024-01-01",
			Details: []models.HistoryDetail{
				{TrackerName: "Squats, weighted", Count: 10, Goal: 10},
			},
		},
	}

	var buf strings.Builder
	if err := Write(&buf, history); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if !strings.Contains(buf.String(), `"Squats, weighted"`) {
		t.Errorf("comma-containing name not quoted: %q", buf.String())
	}
}

func TestWrite_EmptyHistoryEmitsHeaderOnly(t *testing.T) {
	var buf strings.Builder
	if err := Write(&buf, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if strings.TrimSpace(buf.String()) != "Date,Name,Count" {
		t.Errorf("expected header only, got %q", buf.String())
	}
}

func TestRows_SkipsRecordsWithoutDetails(t *testing.T) {
	history := models.HistoryLog{
		{Date: "2024-01-01", TotalVolume: 0, Details: nil},
		{Date: "2024-01-02", Details: []models.HistoryDetail{{TrackerName: "A", Count: 1, Goal: 1}}},
	}

	rows := Rows(history)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Date != "2024-01-02" {
		t.Errorf("row date = %q, want 2024-01-02", rows[0].Date)
	}
}
