package cli

import (
	"fmt"

	"github.com/SyreeseOfficial/Momentum/internal/analytics"
	"github.com/SyreeseOfficial/Momentum/internal/dates"
	"github.com/SyreeseOfficial/Momentum/internal/streak"
)

type StatsCmd struct {
	Window int `short:"w" help:"Rolling window in days." default:"7"`
}

func (c *StatsCmd) Validate() error {
	if c.Window < 1 {
		return fmt.Errorf("window must be at least 1 day")
	}
	return nil
}

func (c *StatsCmd) Run(ctx *Context) error {
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
	history, err := ctx.Store.GetHistory()
	if err != nil {
		return err
	}

	today := dates.Today()

	streaks := streak.Compute(today, trackers, history)
	fmt.Printf("Current streak: %d day(s)\n", streaks.Current)
	fmt.Printf("Best streak:    %d day(s)\n", streaks.Best)
	fmt.Println()

	fmt.Printf("Today's volume:   %d\n", analytics.TodayVolume(trackers))
	fmt.Printf("%d-day volume:%s%d\n", c.Window, volumePad(c.Window),
		analytics.RollingVolume(today, trackers, history, c.Window))

	momentum := analytics.ComputeMomentum(today, trackers, history)
	fmt.Printf("Momentum:         %+.0f%% (%s)\n", momentum.Percent, momentum.Direction)

	shares := analytics.EffortSplit(trackers)
	if len(shares) > 0 {
		fmt.Println()
		fmt.Println("Effort split:")
		for _, share := range shares {
			fmt.Printf("  %3d%%  %s (%d)\n", share.Percentage, share.Name, share.Count)
		}
	}

	return nil
}

// volumePad keeps the volume column aligned for 1-3 digit windows.
func volumePad(window int) string {
	switch {
	case window < 10:
		return "     "
	case window < 100:
		return "    "
	default:
		return "   "
	}
}
