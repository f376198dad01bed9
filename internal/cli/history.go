package cli

import (
	"fmt"

	"github.com/SyreeseOfficial/Momentum/internal/dates"
	"github.com/SyreeseOfficial/Momentum/internal/models"
	"github.com/SyreeseOfficial/Momentum/internal/validation"
)

type HistoryListCmd struct {
	Last int `help:"Show only the most recent N days." default:"0"`
}

func (c *HistoryListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := Reconcile(ctx); err != nil {
		return err
	}

	history, err := ctx.Store.GetHistory()
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Println("No history yet")
		return nil
	}

	sorted := history.SortedByDate()
	if c.Last > 0 && len(sorted) > c.Last {
		sorted = sorted[len(sorted)-c.Last:]
	}

	for _, record := range sorted {
		marker := " "
		if record.Perfect() {
			marker = "★"
		}
		fmt.Printf("%s %s  total %d\n", marker, record.Date, record.TotalVolume)
		for _, detail := range record.Details {
			met := " "
			if detail.Count >= detail.Goal {
				met = "✓"
			}
			fmt.Printf("    %s %s: %d/%d\n", met, detail.TrackerName, detail.Count, detail.Goal)
		}
	}

	return nil
}

// HistorySetCmd edits one tracker's count on one archived day,
// creating the day's record when missing. The date-key uniqueness
// invariant holds because edits go through the upsert path.
type HistorySetCmd struct {
	Date  string `arg:"" help:"Day to edit (YYYY-MM-DD)."`
	Name  string `arg:"" help:"Tracker name as archived."`
	Count int    `arg:"" help:"New count."`
	Goal  int    `short:"g" help:"Goal to record (defaults to the archived goal, or the tracker's current goal for new entries)." default:"0"`
}

func (c *HistorySetCmd) Validate() error {
	if !dates.IsValid(c.Date) {
		return fmt.Errorf("invalid date: %q, want YYYY-MM-DD", c.Date)
	}
	if c.Count < 0 {
		return fmt.Errorf("count must not be negative")
	}
	if c.Goal != 0 {
		return validation.ValidateGoal(c.Goal)
	}
	return nil
}

func (c *HistorySetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := Reconcile(ctx); err != nil {
		return err
	}

	if dates.Compare(c.Date, dates.Today()) >= 0 {
		return fmt.Errorf("cannot edit history for today or future dates; use 'momentum up' for today")
	}

	history, err := ctx.Store.GetHistory()
	if err != nil {
		return err
	}

	record, _ := history.Find(c.Date)
	record.Date = c.Date

	found := false
	for i, detail := range record.Details {
		if detail.TrackerName == c.Name {
			record.Details[i].Count = c.Count
			if c.Goal != 0 {
				record.Details[i].Goal = c.Goal
			}
			found = true
			break
		}
	}
	if !found {
		goal := c.Goal
		if goal == 0 {
			if tracker, err := ctx.Store.GetTrackerByName(c.Name); err == nil {
				goal = tracker.DailyGoal
			} else {
				goal = 1
			}
		}
		record.Details = append(record.Details, models.HistoryDetail{
			TrackerName: c.Name,
			Count:       c.Count,
			Goal:        goal,
		})
	}

	// Recompute the day's total from its details
	total := 0
	for _, detail := range record.Details {
		total += detail.Count
	}
	record.TotalVolume = total

	if err := ctx.Store.UpsertHistoryRecord(record); err != nil {
		return err
	}

	fmt.Printf("Updated %s: %s = %d (day total %d)\n", c.Date, c.Name, c.Count, total)
	return nil
}

type HistoryDeleteCmd struct {
	Date string `arg:"" help:"Day to delete (YYYY-MM-DD)."`
}

func (c *HistoryDeleteCmd) Validate() error {
	if !dates.IsValid(c.Date) {
		return fmt.Errorf("invalid date: %q, want YYYY-MM-DD", c.Date)
	}
	return nil
}

func (c *HistoryDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := Reconcile(ctx); err != nil {
		return err
	}

	if err := ctx.Store.DeleteHistoryRecord(c.Date); err != nil {
		return err
	}

	fmt.Printf("Deleted history for %s\n", c.Date)
	return nil
}
