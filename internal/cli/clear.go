package cli

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/SyreeseOfficial/Momentum/internal/backup"
	"github.com/SyreeseOfficial/Momentum/internal/logger"
)

type ClearCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if !c.Force {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Delete all trackers, history, and settings?").
					Description("This cannot be undone.").
					Value(&confirmed),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted")
			return nil
		}
	}

	// Snapshot first so an accidental clear is recoverable
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if path, err := mgr.Create(); err != nil {
		logger.Warn("pre-clear snapshot failed", "error", err)
	} else {
		fmt.Printf("Snapshot saved: %s\n", filepath.Base(path))
	}

	if err := ctx.Store.Clear(); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}

	fmt.Println("All data cleared")
	return nil
}
