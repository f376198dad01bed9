package storage

import (
	"github.com/SyreeseOfficial/Momentum/internal/engine"
	"github.com/SyreeseOfficial/Momentum/internal/models"
)

// Meta keys used by the stores.
const (
	MetaLastActiveDate   = "last_active_date"
	MetaReminderLastSent = "reminder_last_sent"
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Trackers
	AddTracker(models.Tracker) error
	GetTracker(id string) (models.Tracker, error)
	GetTrackerByName(name string) (models.Tracker, error)
	GetAllTrackers() ([]models.Tracker, error)
	UpdateTracker(models.Tracker) error
	DeleteTracker(id string) error

	// History
	GetHistory() (models.HistoryLog, error)
	UpsertHistoryRecord(models.HistoryRecord) error
	DeleteHistoryRecord(date string) error

	// Day marker and misc metadata
	GetLastActiveDate() (string, error)
	SetLastActiveDate(date string) error
	GetMeta(key string) (string, error)
	SetMeta(key, value string) error

	// ApplyRollover persists a day transition (reset trackers, new
	// history, new date marker) as a single operation. All rollover
	// writes funnel through here.
	ApplyRollover(engine.Result) error

	// Clear wipes all trackers, history, and metadata.
	Clear() error

	// Utils
	GetConfigPath() string
}
