package cli

import (
	"fmt"
	"os"

	"github.com/SyreeseOfficial/Momentum/internal/export"
)

type ExportCmd struct {
	Out string `short:"o" help:"Output file (defaults to stdout)." default:""`
}

func (c *ExportCmd) Run(ctx *Context) error {
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

	if c.Out == "" {
		return export.Write(os.Stdout, history)
	}

	if err := export.WriteFile(c.Out, history); err != nil {
		return fmt.Errorf("failed to export history: %w", err)
	}
	fmt.Printf("Exported %d days to %s\n", len(history), c.Out)
	return nil
}
