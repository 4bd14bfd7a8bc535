// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "github.com/pdiddy/hubbar/pkg/types"

// Columns is the display-width budget of each field in an aligned item row.
type Columns struct {
	Name      int
	Owner     int
	Likes     int
	Downloads int
	Age       int
}

// Theme holds the icon and color tables and layout limits used by the
// Renderer. A Theme is never modified after construction; lookups fall back
// to a default instead of failing.
type Theme struct {
	icons  map[string]string
	colors map[string]string

	Font        string
	Size        int
	Columns     Columns
	CopyCommand string

	MaxTags   int
	DescLines int
	DescWidth int
	NameWidth int
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		icons: map[string]string{
			"default":   "🤗",
			"papers":    "📄",
			"likes":     "❤️",
			"downloads": "↓",
			"public":    "🌐",
			"private":   "🔒",
			"created":   "📅",
			"tags":      "🏷",
			"authors":   "👥",
			"upvotes":   "👍",
			"comments":  "💬",
			"summary":   "📝",
		},
		colors: map[string]string{
			"default": "gray",
			"error":   "red",
			"header":  "#666666",
			"detail":  "#666666",
			"title":   "#333333",
			"ok":      "#4CAF50",
			"empty":   "#999999",
			"upvotes": "#FF6B6B",
		},
		Font: "Menlo",
		Size: 12,
		Columns: Columns{
			Name:      28,
			Owner:     16,
			Likes:     7,
			Downloads: 8,
			Age:       4,
		},
		CopyCommand: "hubbar",
		MaxTags:     5,
		DescLines:   3,
		DescWidth:   60,
		NameWidth:   50,
	}
}

// NewTheme returns the default theme with cfg's non-zero settings applied.
func NewTheme(cfg types.ThemeConfig) Theme {
	t := DefaultTheme()
	if cfg.Font != "" {
		t.Font = cfg.Font
	}
	if cfg.Size > 0 {
		t.Size = cfg.Size
	}
	if cfg.CopyCommand != "" {
		t.CopyCommand = cfg.CopyCommand
	}
	return t
}

// Icon returns the icon for key, or the default icon.
func (t Theme) Icon(key string) string {
	if v, ok := t.icons[key]; ok {
		return v
	}
	return t.icons["default"]
}

// Color returns the color for key, or the default color.
func (t Theme) Color(key string) string {
	if v, ok := t.colors[key]; ok {
		return v
	}
	return t.colors["default"]
}
