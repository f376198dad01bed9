package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/SyreeseOfficial/Momentum/internal/cli"
	"github.com/SyreeseOfficial/Momentum/internal/logger"
	"github.com/SyreeseOfficial/Momentum/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/momentum/momentum.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init    cli.InitCmd   `cmd:"" help:"Initialize momentum storage."`
	Tui     cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Add     cli.AddCmd    `cmd:"" help:"Add a new tracker."`
	List    cli.ListCmd   `cmd:"" help:"List trackers with today's counts."`
	Up      cli.UpCmd     `cmd:"" help:"Increment a tracker's count."`
	Down    cli.DownCmd   `cmd:"" help:"Decrement a tracker's count."`
	Pause   cli.PauseCmd  `cmd:"" help:"Pause a tracker."`
	Resume  cli.ResumeCmd `cmd:"" help:"Resume a paused tracker."`
	Edit    cli.EditCmd   `cmd:"" help:"Edit a tracker's goal or name."`
	Remove  cli.RemoveCmd `cmd:"" help:"Remove a tracker."`
	Stats   cli.StatsCmd  `cmd:"" help:"Show streaks, volume, momentum, and effort split."`
	History struct {
		List   cli.HistoryListCmd   `cmd:"" help:"List archived days."`
		Set    cli.HistorySetCmd    `cmd:"" help:"Edit an archived day's count for a tracker."`
		Delete cli.HistoryDeleteCmd `cmd:"" help:"Delete an archived day."`
	} `cmd:"" help:"Inspect and edit archived history."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a snapshot of the store."`
		List    cli.BackupListCmd    `cmd:"" help:"List available snapshots."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the store from a snapshot."`
	} `cmd:"" help:"Manage store snapshots."`
	Export   cli.ExportCmd   `cmd:"" help:"Export history as CSV."`
	Settings cli.SettingsCmd `cmd:"" help:"Configure application settings."`
	Remind   cli.RemindCmd   `cmd:"" hidden:"" help:"Deliver the daily reminder if due."`
	Clear    cli.ClearCmd    `cmd:"" help:"Delete all data."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("momentum"),
		kong.Description("Habit consistency tracker with streaks and momentum analytics"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	err := ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
