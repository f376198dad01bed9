package cli

import "fmt"

type UpCmd struct {
	Name string `arg:"" help:"Tracker name."`
	By   int    `short:"n" help:"Amount to add." default:"1"`
}

func (c *UpCmd) Validate() error {
	if c.By < 1 {
		return fmt.Errorf("amount must be at least 1")
	}
	return nil
}

func (c *UpCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := Reconcile(ctx); err != nil {
		return err
	}

	tracker, err := findTracker(ctx, c.Name)
	if err != nil {
		return err
	}

	tracker.Count += c.By
	if err := ctx.Store.UpdateTracker(tracker); err != nil {
		return err
	}

	fmt.Printf("%s: %d/%d\n", tracker.Name, tracker.Count, tracker.DailyGoal)
	if tracker.GoalMet() {
		fmt.Println("Goal met!")
	}
	return nil
}

type DownCmd struct {
	Name string `arg:"" help:"Tracker name."`
	By   int    `short:"n" help:"Amount to subtract." default:"1"`
}

func (c *DownCmd) Validate() error {
	if c.By < 1 {
		return fmt.Errorf("amount must be at least 1")
	}
	return nil
}

func (c *DownCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := Reconcile(ctx); err != nil {
		return err
	}

	tracker, err := findTracker(ctx, c.Name)
	if err != nil {
		return err
	}

	// Counts never go below zero
	tracker.Count -= c.By
	if tracker.Count < 0 {
		tracker.Count = 0
	}
	if err := ctx.Store.UpdateTracker(tracker); err != nil {
		return err
	}

	fmt.Printf("%s: %d/%d\n", tracker.Name, tracker.Count, tracker.DailyGoal)
	return nil
}
