// Package analytics computes volume, momentum, and effort-split
// figures over live trackers and archived history. Every function is
// pure and total: empty inputs yield zeroes and empty lists, never
// errors.
package analytics

import (
	"math"
	"sort"

	"github.com/SyreeseOfficial/Momentum/internal/dates"
	"github.com/SyreeseOfficial/Momentum/internal/models"
)

// Rolling windows surfaced by the stats views.
const (
	WindowWeek     = 7
	WindowFortnite = 14
	WindowMonth    = 30
)

// Direction classifies momentum relative to yesterday.
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionEqual Direction = "equal"
)

// Momentum is the day-over-day change in total volume. Percent is a
// signed, unclamped percentage.
type Momentum struct {
	Percent   float64   `json:"percent"`
	Direction Direction `json:"direction"`
}

// Share is one tracker's slice of today's total effort.
type Share struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// TodayVolume sums all live tracker counts.
func TodayVolume(trackers []models.Tracker) int {
	total := 0
	for _, t := range trackers {
		total += t.Count
	}
	return total
}

// RollingVolume sums today's live volume plus every archived record
// inside an inclusive windowDays-day window ending today. Today's
// counts are included even though the day is not yet archived.
func RollingVolume(today string, trackers []models.Tracker, history models.HistoryLog, windowDays int) int {
	total := TodayVolume(trackers)
	if windowDays <= 1 {
		return total
	}

	splitDate := dates.AddDays(today, -(windowDays - 1))
	for _, r := range history {
		if r.Date >= splitDate && r.Date < today {
			total += r.TotalVolume
		}
	}
	return total
}

// ComputeMomentum compares today's volume against yesterday's
// archived record. With no record (or a zero day) yesterday, any work
// today reads as 100% and an idle today as 0%.
func ComputeMomentum(today string, trackers []models.Tracker, history models.HistoryLog) Momentum {
	todayVolume := TodayVolume(trackers)

	yesterdayVolume := 0
	if r, ok := history.Find(dates.AddDays(today, -1)); ok {
		yesterdayVolume = r.TotalVolume
	}

	m := Momentum{Direction: direction(todayVolume, yesterdayVolume)}
	if yesterdayVolume == 0 {
		if todayVolume > 0 {
			m.Percent = 100
		}
		return m
	}

	m.Percent = float64(todayVolume-yesterdayVolume) / float64(yesterdayVolume) * 100
	return m
}

func direction(todayVolume, yesterdayVolume int) Direction {
	switch {
	case todayVolume > yesterdayVolume:
		return DirectionUp
	case todayVolume < yesterdayVolume:
		return DirectionDown
	default:
		return DirectionEqual
	}
}

// EffortSplit returns each tracker's rounded percentage of today's
// total volume, sorted descending. Ties keep input order; the
// independently rounded percentages need not sum to exactly 100.
func EffortSplit(trackers []models.Tracker) []Share {
	total := TodayVolume(trackers)
	if total == 0 {
		return []Share{}
	}

	shares := make([]Share, 0, len(trackers))
	for _, t := range trackers {
		shares = append(shares, Share{
			Name:       t.Name,
			Count:      t.Count,
			Percentage: int(math.Round(float64(t.Count) / float64(total) * 100)),
		})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Percentage > shares[j].Percentage
	})
	return shares
}
