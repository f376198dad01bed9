package cli

import (
	"fmt"

	"github.com/SyreeseOfficial/Momentum/internal/dates"
	"github.com/SyreeseOfficial/Momentum/internal/engine"
	"github.com/SyreeseOfficial/Momentum/internal/logger"
	"github.com/SyreeseOfficial/Momentum/internal/models"
	"github.com/SyreeseOfficial/Momentum/internal/storage"
)

type Context struct {
	Store storage.Provider
	Debug bool
}

// Reconcile runs the day-boundary check and persists any transition.
// Every command that touches live state calls this first, making it
// the "app opened" moment. Safe to call repeatedly within a day.
func Reconcile(ctx *Context) error {
	trackers, err := ctx.Store.GetAllTrackers()
	if err != nil {
		return fmt.Errorf("failed to load trackers: %w", err)
	}
	lastActive, err := ctx.Store.GetLastActiveDate()
	if err != nil {
		return fmt.Errorf("failed to load last-active date: %w", err)
	}
	history, err := ctx.Store.GetHistory()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	result, changed := engine.Reconcile(dates.Today(), trackers, lastActive, history)
	if !changed {
		return nil
	}

	if err := ctx.Store.ApplyRollover(result); err != nil {
		return fmt.Errorf("failed to apply rollover: %w", err)
	}

	logger.Info("rolled over day boundary", "archived", lastActive, "today", result.DateKey)
	return nil
}

// findTracker resolves a tracker by name, with id as a fallback so
// scripts can address trackers stably.
func findTracker(ctx *Context, nameOrID string) (models.Tracker, error) {
	if tracker, err := ctx.Store.GetTrackerByName(nameOrID); err == nil {
		return tracker, nil
	}
	tracker, err := ctx.Store.GetTracker(nameOrID)
	if err != nil {
		return models.Tracker{}, fmt.Errorf("no tracker named %q", nameOrID)
	}
	return tracker, nil
}
