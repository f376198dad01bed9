// Package dates produces and manipulates the canonical YYYY-MM-DD
// date keys used throughout the app. Keys are zero-padded, so string
// comparison gives chronological order.
package dates

import (
	"strings"
	"time"
)

const keyLayout = "2006-01-02"

// Today returns the local calendar date as a YYYY-MM-DD key.
func Today() string {
	return time.Now().Format(keyLayout)
}

// AddDays shifts a date key by n days (n may be negative) using real
// calendar arithmetic, not string manipulation.
func AddDays(key string, n int) string {
	t, err := time.Parse(keyLayout, key)
	if err != nil {
		return key
	}
	return t.AddDate(0, 0, n).Format(keyLayout)
}

// Compare orders two date keys chronologically. It returns -1 if a is
// before b, 1 if after, and 0 if equal.
func Compare(a, b string) int {
	return strings.Compare(a, b)
}

// IsValid reports whether key is a well-formed YYYY-MM-DD date.
func IsValid(key string) bool {
	t, err := time.Parse(keyLayout, key)
	if err != nil {
		return false
	}
	return t.Format(keyLayout) == key
}
