// Package streak computes consecutive-day runs of fully-met goals.
package streak

import (
	"sort"

	"github.com/SyreeseOfficial/Momentum/internal/dates"
	"github.com/SyreeseOfficial/Momentum/internal/models"
)

// Summary holds the current consecutive-day streak and the best
// streak ever observed. Best is never less than Current.
type Summary struct {
	Current int `json:"current_streak"`
	Best    int `json:"best_streak"`
}

// Compute evaluates streaks over today's live trackers plus archived
// history. A live day is perfect when there is at least one active
// tracker and every active tracker has met its goal; a historical day
// is perfect per its record. Days absent from history break streaks.
func Compute(today string, trackers []models.Tracker, history models.HistoryLog) Summary {
	perfectDates := make(map[string]bool)

	if todayPerfect(trackers) {
		perfectDates[today] = true
	}
	for _, r := range history {
		if r.Perfect() {
			perfectDates[r.Date] = true
		}
	}

	current := currentStreak(today, perfectDates)
	best := bestStreak(perfectDates)
	if current > best {
		// An in-progress run not yet materialized as history records
		// must still count toward the best.
		best = current
	}

	return Summary{Current: current, Best: best}
}

// todayPerfect evaluates the live tracker set. A day with zero active
// trackers is never perfect.
func todayPerfect(trackers []models.Tracker) bool {
	active := 0
	for _, t := range trackers {
		if !t.IsActive {
			continue
		}
		active++
		if !t.GoalMet() {
			return false
		}
	}
	return active > 0
}

func currentStreak(today string, perfectDates map[string]bool) int {
	checkDate := today
	// Today may still be in progress; an unfinished today does not
	// break a streak that is alive through yesterday.
	if !perfectDates[checkDate] {
		checkDate = dates.AddDays(checkDate, -1)
	}

	streak := 0
	for perfectDates[checkDate] {
		streak++
		checkDate = dates.AddDays(checkDate, -1)
	}
	return streak
}

func bestStreak(perfectDates map[string]bool) int {
	if len(perfectDates) == 0 {
		return 0
	}

	sorted := make([]string, 0, len(perfectDates))
	for d := range perfectDates {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	best := 0
	run := 0
	prev := ""
	for _, d := range sorted {
		if prev != "" && dates.AddDays(prev, 1) == d {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		prev = d
	}
	return best
}
