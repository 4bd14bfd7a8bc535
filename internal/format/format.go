// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format maps raw record values to display strings for the menu.
// Every function is total: malformed or missing input yields an empty or
// fallback string so one bad record never aborts rendering.
package format

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Ellipsis marks truncated text.
const Ellipsis = "..."

// Magnitude renders n with a K or M suffix and one decimal, rounding half
// up. A value that rounds to 1000.0K renders as 1.0M. Zero and negative
// values render as "".
func Magnitude(n int) string {
	switch {
	case n <= 0:
		return ""
	case n < 1000:
		return strconv.Itoa(n)
	}
	if tenths := (n + 50) / 100; tenths < 10_000 {
		return oneDecimal(tenths) + "K"
	}
	return oneDecimal((n+50_000)/100_000) + "M"
}

func oneDecimal(tenths int) string {
	return strconv.Itoa(tenths/10) + "." + strconv.Itoa(tenths%10)
}

// Thousands renders n with comma grouping (12,345). Negative values clamp to 0.
func Thousands(n int) string {
	if n < 0 {
		n = 0
	}
	return humanize.Comma(int64(n))
}

var unsafeReplacer = strings.NewReplacer(
	"|", "–",
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
	"\t", " ",
)

// Sanitize makes text safe for one menu line: the field separator "|" becomes
// an en dash and line breaks become spaces. The result is then truncated to
// maxLen runes, ending in Ellipsis when cut. maxLen <= 0 disables truncation;
// limits too small to hold the marker cut without it.
func Sanitize(text string, maxLen int) string {
	if text == "" {
		return ""
	}
	text = unsafeReplacer.Replace(text)
	return Truncate(text, maxLen)
}

// Truncate shortens s to at most maxLen runes, reserving room for Ellipsis.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= len(Ellipsis) {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-len(Ellipsis)]) + Ellipsis
}

// Squash collapses all whitespace runs, including line breaks, into single spaces.
func Squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitOwner splits a Hub identifier on its first "/". Ownerless identifiers
// return an empty owner and the identifier as name.
func SplitOwner(id string) (owner, name string) {
	owner, name, found := strings.Cut(id, "/")
	if !found {
		return "", id
	}
	return owner, name
}
