package models

import "sort"

// HistoryDetail is a per-tracker snapshot inside a history record.
// Name and goal are copied by value at archival time, so renaming or
// deleting a tracker later does not alter past records.
type HistoryDetail struct {
	TrackerName string `json:"tracker_name"`
	Count       int    `json:"count"`
	Goal        int    `json:"goal"`
}

// HistoryRecord is an immutable snapshot of one past calendar day
type HistoryRecord struct {
	Date        string          `json:"date"` // YYYY-MM-DD format
	TotalVolume int             `json:"total_volume"`
	Details     []HistoryDetail `json:"details"`
}

// Perfect reports whether every tracked habit met its goal that day.
// A day with no details is never perfect.
func (r HistoryRecord) Perfect() bool {
	if len(r.Details) == 0 {
		return false
	}
	for _, d := range r.Details {
		if d.Count < d.Goal {
			return false
		}
	}
	return true
}

// HistoryLog is the collection of archived days. At most one record
// exists per date key; Upsert enforces this.
type HistoryLog []HistoryRecord

// Find returns the record for the given date key.
func (h HistoryLog) Find(date string) (HistoryRecord, bool) {
	for _, r := range h {
		if r.Date == date {
			return r, true
		}
	}
	return HistoryRecord{}, false
}

// Upsert returns a new log with the record inserted, replacing any
// existing record for the same date.
func (h HistoryLog) Upsert(record HistoryRecord) HistoryLog {
	out := make(HistoryLog, 0, len(h)+1)
	for _, r := range h {
		if r.Date != record.Date {
			out = append(out, r)
		}
	}
	return append(out, record)
}

// Delete returns a new log without the record for the given date.
func (h HistoryLog) Delete(date string) HistoryLog {
	out := make(HistoryLog, 0, len(h))
	for _, r := range h {
		if r.Date != date {
			out = append(out, r)
		}
	}
	return out
}

// SortedByDate returns a copy sorted ascending by date key.
// Lexicographic order is chronological for zero-padded keys.
func (h HistoryLog) SortedByDate() HistoryLog {
	out := make(HistoryLog, len(h))
	copy(out, h)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}
