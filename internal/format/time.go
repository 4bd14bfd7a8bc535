// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"fmt"
	"strings"
	"time"
)

const dateFmt = "2006-01-02"

// timestampLayouts lists the accepted createdAt encodings, most common first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	dateFmt,
}

// ParseTimestamp parses an API timestamp into UTC. Timestamps without a zone
// are read as UTC. ok is false for empty or unparsable input.
func ParseTimestamp(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}

// elapsedUnit reduces the time since t to one count and unit ('m', 'h', 'd').
// Both relative-time renderings share these thresholds. Future times clamp to zero.
func elapsedUnit(t, now time.Time) (int, byte) {
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Hour:
		return int(d / time.Minute), 'm'
	case d < 24*time.Hour:
		return int(d / time.Hour), 'h'
	default:
		return int(d / (24 * time.Hour)), 'd'
	}
}

// ShortRelativeTime renders the age of t as a compact token: "5m", "3h", "12d".
// The zero time renders as "".
func ShortRelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	n, unit := elapsedUnit(t, now)
	return fmt.Sprintf("%d%c", n, unit)
}

// RelativeTime renders the age of t in words: "5 minutes ago", "1 day ago",
// "2 weeks ago". Ages of 30 days or more render as the calendar date.
// The zero time renders as "".
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	n, unit := elapsedUnit(t, now)
	switch unit {
	case 'm':
		return plural(n, "minute") + " ago"
	case 'h':
		return plural(n, "hour") + " ago"
	}
	switch {
	case n < 7:
		return plural(n, "day") + " ago"
	case n < 30:
		return plural(n/7, "week") + " ago"
	default:
		return t.UTC().Format(dateFmt)
	}
}

// Date renders t as a UTC calendar date, or "" for the zero time.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateFmt)
}

// Stamp renders t as a UTC date and minute, or "" for the zero time.
func Stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04 UTC")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
