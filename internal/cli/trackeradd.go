package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/SyreeseOfficial/Momentum/internal/models"
	"github.com/SyreeseOfficial/Momentum/internal/validation"
)

type AddCmd struct {
	Name string `arg:"" help:"Tracker name."`
	Goal int    `short:"g" help:"Daily goal (positive integer)." required:""`
}

func (c *AddCmd) Validate() error {
	if err := validation.ValidateName(c.Name); err != nil {
		return err
	}
	return validation.ValidateGoal(c.Goal)
}

func (c *AddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := Reconcile(ctx); err != nil {
		return err
	}

	if _, err := ctx.Store.GetTrackerByName(c.Name); err == nil {
		return fmt.Errorf("a tracker named %q already exists", c.Name)
	}

	existing, err := ctx.Store.GetAllTrackers()
	if err != nil {
		return err
	}

	tracker := models.Tracker{
		ID:        uuid.New().String(),
		Name:      c.Name,
		Count:     0,
		DailyGoal: c.Goal,
		SortOrder: len(existing),
		IsActive:  true,
	}

	if err := ctx.Store.AddTracker(tracker); err != nil {
		return err
	}

	fmt.Printf("Added tracker: %s (goal %d/day, ID: %s)\n", c.Name, c.Goal, tracker.ID)
	return nil
}
