package cli

import (
	"time"

	"github.com/SyreeseOfficial/Momentum/internal/dates"
	"github.com/SyreeseOfficial/Momentum/internal/logger"
	"github.com/SyreeseOfficial/Momentum/internal/notify"
	"github.com/SyreeseOfficial/Momentum/internal/storage"
)

// RemindCmd is invoked by the tray app (or a cron entry) on a short
// interval. It exits quietly unless the configured reminder time has
// arrived and nothing was delivered today.
type RemindCmd struct{}

func (c *RemindCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := Reconcile(ctx); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	lastSent, err := ctx.Store.GetMeta(storage.MetaReminderLastSent)
	if err != nil {
		return err
	}

	today := dates.Today()
	now := time.Now().Format("15:04")
	if !notify.ReminderDue(settings, now, today, lastSent) {
		return nil
	}

	if err := notify.New().NotifyReminder(); err != nil {
		// A dead or missing tray app is normal; log and retry on the
		// next tick rather than marking the reminder delivered.
		logger.Debug("reminder delivery failed", "error", err)
		return nil
	}

	if err := ctx.Store.SetMeta(storage.MetaReminderLastSent, today); err != nil {
		return err
	}
	logger.Info("delivered daily reminder", "date", today)
	return nil
}
