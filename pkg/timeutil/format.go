// Package timeutil formats the timestamps stored with saved atoms.
//
// Saved atoms carry their creation time as Unix nanoseconds (int64).
// This package converts them to the short forms shown in the TUI's
// saved list and the full form used in reports.
package timeutil

import (
	"fmt"
	"time"
)

// FromNano converts a Unix nanosecond timestamp to time.Time.
func FromNano(ns int64) time.Time {
	return time.Unix(0, ns)
}

// NowNano returns the current time as Unix nanoseconds.
func NowNano() int64 {
	return time.Now().UnixNano()
}

// FormatDate formats a timestamp for list columns. Format: "2006-01-02 15:04"
func FormatDate(ns int64) string {
	return FromNano(ns).Format("2006-01-02 15:04")
}

// FormatTimestampFull formats a timestamp with seconds.
// Format: "2006-01-02 15:04:05"
func FormatTimestampFull(ns int64) string {
	return FromNano(ns).Format("2006-01-02 15:04:05")
}

// RelativeTime returns a human-readable age such as "just now", "5m ago"
// or "3d ago".
func RelativeTime(ns int64) string {
	return RelativeTo(ns, time.Now())
}

// RelativeTo is RelativeTime measured from now.
func RelativeTo(ns int64, now time.Time) string {
	diff := now.Sub(FromNano(ns))

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return FromNano(ns).Format("2006-01-02")
	}
}
