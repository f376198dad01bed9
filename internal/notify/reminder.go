package notify

import (
	"github.com/SyreeseOfficial/Momentum/internal/models"
)

// ReminderDue reports whether the daily reminder should fire right
// now: reminders are enabled, the current wall-clock HH:MM matches
// the configured time, and nothing was delivered today yet (the
// caller records delivery under a last-delivered date key).
func ReminderDue(settings models.Settings, nowHHMM, today, lastDelivered string) bool {
	if !settings.ReminderEnabled || settings.ReminderTime == "" {
		return false
	}
	if nowHHMM != settings.ReminderTime {
		return false
	}
	return lastDelivered != today
}
