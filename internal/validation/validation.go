// Package validation checks tracker input before it reaches the core.
// Goals below 1 and empty names are rejected here so the engine and
// analytics never see them.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SyreeseOfficial/Momentum/internal/models"
)

// ValidateName checks a tracker display name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("tracker name must not be empty")
	}
	return nil
}

// ValidateGoal checks a daily goal value.
func ValidateGoal(goal int) error {
	if goal < 1 {
		return fmt.Errorf("daily goal must be a positive integer, got %d", goal)
	}
	return nil
}

// ParseGoal converts user goal input, rejecting non-numeric and
// non-positive values.
func ParseGoal(input string) (int, error) {
	goal, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("daily goal must be a number: %q", input)
	}
	if err := ValidateGoal(goal); err != nil {
		return 0, err
	}
	return goal, nil
}

// ValidateTracker checks a tracker before it is stored.
func ValidateTracker(t models.Tracker) error {
	if err := ValidateName(t.Name); err != nil {
		return err
	}
	if err := ValidateGoal(t.DailyGoal); err != nil {
		return err
	}
	if t.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", t.Count)
	}
	return nil
}

// ValidateReminderTime checks an HH:MM reminder time.
func ValidateReminderTime(timeStr string) error {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid time format: %q, want HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid minute in %q", timeStr)
	}
	return nil
}
