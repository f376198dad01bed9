// Package engine decides when a day boundary has been crossed and
// rolls the prior day's live counts into permanent history.
package engine

import (
	"github.com/SyreeseOfficial/Momentum/internal/models"
)

// Result is the outcome of a day transition: the reset tracker set,
// the history including the newly archived record, and the date key
// the app should consider active from now on.
type Result struct {
	Trackers []models.Tracker
	History  models.HistoryLog
	DateKey  string
}

// Reconcile checks whether lastActiveDate still matches today and, if
// not, archives the live counts under lastActiveDate and resets every
// tracker to zero. The second return value is false when no boundary
// was crossed; inputs are never mutated.
//
// Only one snapshot is archived per call even if several days elapsed
// while the app was closed. Missed days stay absent from history; the
// streak calculator treats absence as not-perfect.
func Reconcile(today string, trackers []models.Tracker, lastActiveDate string, history models.HistoryLog) (Result, bool) {
	if lastActiveDate == today {
		return Result{}, false
	}

	total := 0
	details := make([]models.HistoryDetail, 0, len(trackers))
	for _, t := range trackers {
		total += t.Count
		details = append(details, models.HistoryDetail{
			TrackerName: t.Name,
			Count:       t.Count,
			Goal:        t.DailyGoal,
		})
	}

	// On the very first run lastActiveDate is unset; archive under
	// today's key rather than an empty one.
	archiveDate := lastActiveDate
	if archiveDate == "" {
		archiveDate = today
	}

	record := models.HistoryRecord{
		Date:        archiveDate,
		TotalVolume: total,
		Details:     details,
	}

	reset := make([]models.Tracker, len(trackers))
	for i, t := range trackers {
		t.Count = 0
		reset[i] = t
	}

	return Result{
		Trackers: reset,
		History:  history.Upsert(record),
		DateKey:  today,
	}, true
}
