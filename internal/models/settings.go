package models

// Settings represents application-wide settings
type Settings struct {
	ReminderEnabled bool   `json:"reminder_enabled"` // whether the daily check-in reminder is on
	ReminderTime    string `json:"reminder_time"`    // the reminder time, e.g. "20:00"
}
