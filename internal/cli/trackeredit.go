package cli

import (
	"fmt"

	"github.com/SyreeseOfficial/Momentum/internal/validation"
)

type PauseCmd struct {
	Name string `arg:"" help:"Tracker name."`
}

func (c *PauseCmd) Run(ctx *Context) error {
	return setActive(ctx, c.Name, false)
}

type ResumeCmd struct {
	Name string `arg:"" help:"Tracker name."`
}

func (c *ResumeCmd) Run(ctx *Context) error {
	return setActive(ctx, c.Name, true)
}

func setActive(ctx *Context, name string, active bool) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := Reconcile(ctx); err != nil {
		return err
	}

	tracker, err := findTracker(ctx, name)
	if err != nil {
		return err
	}

	tracker.IsActive = active
	if err := ctx.Store.UpdateTracker(tracker); err != nil {
		return err
	}

	if active {
		fmt.Printf("Resumed tracker: %s\n", tracker.Name)
	} else {
		fmt.Printf("Paused tracker: %s (won't count toward perfect days)\n", tracker.Name)
	}
	return nil
}

type EditCmd struct {
	Name   string `arg:"" help:"Tracker name."`
	Goal   int    `short:"g" help:"New daily goal." default:"0"`
	Rename string `help:"New display name."`
}

func (c *EditCmd) Run(ctx *Context) error {
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

	if c.Goal != 0 {
		if err := validation.ValidateGoal(c.Goal); err != nil {
			return err
		}
		tracker.DailyGoal = c.Goal
	}
	if c.Rename != "" {
		if err := validation.ValidateName(c.Rename); err != nil {
			return err
		}
		tracker.Name = c.Rename
	}

	if err := ctx.Store.UpdateTracker(tracker); err != nil {
		return err
	}

	fmt.Printf("Updated tracker: %s (goal %d/day)\n", tracker.Name, tracker.DailyGoal)
	return nil
}

type RemoveCmd struct {
	Name string `arg:"" help:"Tracker name."`
}

func (c *RemoveCmd) Run(ctx *Context) error {
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

	// History keeps its own copies of name and goal, so past records
	// survive the deletion untouched.
	if err := ctx.Store.DeleteTracker(tracker.ID); err != nil {
		return err
	}

	fmt.Printf("Removed tracker: %s\n", tracker.Name)
	return nil
}
