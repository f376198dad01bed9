package cli

import "fmt"

type ListCmd struct {
	ActiveOnly bool `help:"Show only active trackers."`
}

func (c *ListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := Reconcile(ctx); err != nil {
		return err
	}

	trackers, err := ctx.Store.GetAllTrackers()
	if err != nil {
		return err
	}
	if len(trackers) == 0 {
		fmt.Println("No trackers found")
		return nil
	}

	fmt.Println("Trackers:")
	for _, tracker := range trackers {
		if c.ActiveOnly && !tracker.IsActive {
			continue
		}

		status := "active"
		if !tracker.IsActive {
			status = "paused"
		}

		marker := " "
		if tracker.IsActive && tracker.GoalMet() {
			marker = "✓"
		}

		fmt.Printf("  %s [%s] %s - %d/%d today\n",
			marker, status, tracker.Name, tracker.Count, tracker.DailyGoal)
	}

	return nil
}
