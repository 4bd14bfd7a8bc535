// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// Width returns the display width of s in terminal columns. East Asian wide
// characters count as two columns.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Fit truncates s to width display columns, ending in Ellipsis when cut,
// and pads the result to exactly width columns.
func Fit(s string, width int) string {
	if width <= 0 {
		return s
	}
	if Width(s) > width {
		s = runewidth.Truncate(s, width, Ellipsis)
	}
	return runewidth.FillRight(s, width)
}

// Wrap word-wraps text into lines of at most width runes and keeps the first
// maxLines of them. The last kept line ends in Ellipsis when lines were
// dropped. Whitespace, line breaks included, is collapsed first.
func Wrap(text string, width, maxLines int) []string {
	text = Squash(unsafeReplacer.Replace(text))
	if text == "" || width <= 0 || maxLines <= 0 {
		return nil
	}

	var lines []string
	for _, ln := range strings.Split(wordwrap.String(text, width), "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		lines = append(lines, Truncate(ln, width))
	}

	if len(lines) > maxLines {
		last := []rune(lines[maxLines-1])
		if room := width - len(Ellipsis); len(last) > room && room > 0 {
			last = last[:room]
		}
		lines = lines[:maxLines]
		lines[maxLines-1] = strings.TrimRight(string(last), " ") + Ellipsis
	}
	return lines
}
