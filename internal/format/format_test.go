// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// --- Magnitude ---

func TestMagnitude(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{-4, ""},
		{1, "1"},
		{999, "999"},
		{1000, "1.0K"},
		{1500, "1.5K"},
		{1_250, "1.3K"},
		{12_340, "12.3K"},
		{999_949, "999.9K"},
		{999_950, "1.0M"},
		{999_999, "1.0M"},
		{1_000_000, "1.0M"},
		{1_049_999, "1.0M"},
		{1_050_000, "1.1M"},
		{2_300_000, "2.3M"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Magnitude(tt.n), "Magnitude(%d)", tt.n)
	}
}

func TestThousands(t *testing.T) {
	assert.Equal(t, "0", Thousands(-1))
	assert.Equal(t, "999", Thousands(999))
	assert.Equal(t, "1,234,567", Thousands(1234567))
}

// --- Sanitize ---

func TestSanitizeTruncatesToLimit(t *testing.T) {
	in := strings.Repeat("abcde", 4) // 20 characters
	got := Sanitize(in, 10)

	assert.Equal(t, 10, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, Ellipsis), "got %q", got)
	assert.Equal(t, "abcdeab...", got)
}

func TestSanitizeReplacesUnsafeCharacters(t *testing.T) {
	got := Sanitize("left|right\nnext\r\nline", 0)

	assert.NotContains(t, got, "|")
	assert.NotContains(t, got, "\n")
	assert.NotContains(t, got, "\r")
	assert.Equal(t, "left–right next line", got)
}

func TestSanitizeEdgeCases(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"empty", "", 10, ""},
		{"fits exactly", "abcdefghij", 10, "abcdefghij"},
		{"no limit", "abcdefghijklmnop", 0, "abcdefghijklmnop"},
		{"limit below marker", "abcdefghij", 2, "ab"},
		{"limit equals marker", "abcdefghij", 3, "abc"},
		{"multibyte counted as runes", "日本語のデータセット名", 6, "日本語..."},
		{"replacement keeps length", "a|b", 3, "a–b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.in, tt.maxLen)
			assert.Equal(t, tt.want, got)
			if tt.maxLen > 0 {
				assert.LessOrEqual(t, utf8.RuneCountInString(got), tt.maxLen)
			}
		})
	}
}

func TestSquash(t *testing.T) {
	assert.Equal(t, "a b c", Squash("  a\n\tb   c "))
}

// --- SplitOwner ---

func TestSplitOwner(t *testing.T) {
	tests := []struct {
		id, owner, name string
	}{
		{"openai/gsm8k", "openai", "gsm8k"},
		{"squad", "", "squad"},
		{"org/group/name", "org", "group/name"},
		{"", "", ""},
	}
	for _, tt := range tests {
		owner, name := SplitOwner(tt.id)
		assert.Equal(t, tt.owner, owner, "owner of %q", tt.id)
		assert.Equal(t, tt.name, name, "name of %q", tt.id)
	}
}
