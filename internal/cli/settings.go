package cli

import (
	"fmt"

	"github.com/SyreeseOfficial/Momentum/internal/validation"
)

type SettingsCmd struct {
	Reminder ReminderCmd `cmd:"" help:"Configure the daily check-in reminder."`
}

type ReminderCmd struct {
	At  string `help:"Enable the reminder at the given time (HH:MM)." default:""`
	Off bool   `help:"Disable the reminder."`
}

func (c *ReminderCmd) Validate() error {
	if c.At != "" && c.Off {
		return fmt.Errorf("--at and --off are mutually exclusive")
	}
	if c.At != "" {
		return validation.ValidateReminderTime(c.At)
	}
	return nil
}

func (c *ReminderCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	switch {
	case c.Off:
		settings.ReminderEnabled = false
	case c.At != "":
		settings.ReminderEnabled = true
		settings.ReminderTime = c.At
	default:
		// No flags: show current state
		state := "off"
		if settings.ReminderEnabled {
			state = "on at " + settings.ReminderTime
		}
		fmt.Printf("Daily reminder: %s\n", state)
		return nil
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	if settings.ReminderEnabled {
		fmt.Printf("Daily reminder enabled at %s\n", settings.ReminderTime)
	} else {
		fmt.Println("Daily reminder disabled")
	}
	return nil
}
