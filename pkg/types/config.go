// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds the transport settings shared by every feed request.
type HTTPConfig struct {
	// Timeout bounds each individual GET.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with requests (e.g. "hubbar/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FeedKind selects how a feed is retrieved and how its JSON maps onto Records.
type FeedKind string

const (
	// KindList is a cursor-paginated Hub list endpoint sorted by createdAt.
	KindList FeedKind = "list"
	// KindDaily is the date-scoped daily papers endpoint.
	KindDaily FeedKind = "daily"
)

// Layout selects the menu layout used to render a feed.
type Layout string

const (
	LayoutBucketed Layout = "bucketed"
	LayoutTop      Layout = "top"
	LayoutPapers   Layout = "papers"
)

// FeedDescriptor parameterizes the shared fetch, rank, and render pipeline
// for one feed.
type FeedDescriptor struct {
	// Name is the feed key used on the command line (e.g. "datasets").
	Name string `json:"name" yaml:"name"`

	// Noun is the plural display noun (e.g. "datasets", "papers").
	Noun string `json:"noun" yaml:"noun"`

	Kind   FeedKind `json:"kind" yaml:"kind"`
	Layout Layout   `json:"layout" yaml:"layout"`

	// Endpoint is the API URL for the first request.
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// ItemURL is the web URL prefix for one item; the record ID is appended.
	ItemURL string `json:"item_url" yaml:"item_url"`

	// BrowseURL is the web page listing the whole collection.
	BrowseURL string `json:"browse_url" yaml:"browse_url"`

	// TrendingURL is an optional second browse link.
	TrendingURL string `json:"trending_url,omitempty" yaml:"trending_url,omitempty"`

	// CutoffDays excludes records created more than this many days ago.
	CutoffDays int `json:"cutoff_days" yaml:"cutoff_days"`

	// PageSize is the limit parameter on the first list request.
	PageSize int `json:"page_size" yaml:"page_size"`

	// MaxPages bounds the number of list requests in one run.
	MaxPages int `json:"max_pages" yaml:"max_pages"`

	// DayOffset picks the calendar day for daily feeds (1 = yesterday).
	DayOffset int `json:"day_offset,omitempty" yaml:"day_offset,omitempty"`

	// Metric ranks items inside buckets and for the papers layout.
	Metric Metric `json:"metric" yaml:"metric"`

	// BucketCaps caps the number of items shown per bucket.
	BucketCaps map[Bucket]int `json:"bucket_caps,omitempty" yaml:"bucket_caps,omitempty"`

	// TopN caps the flat views of the top and papers layouts.
	TopN int `json:"top_n" yaml:"top_n"`
}

// Cap returns the display cap for bucket b, or 0 when the bucket is hidden.
func (d FeedDescriptor) Cap(b Bucket) int {
	return d.BucketCaps[b]
}

// Cutoff returns the earliest creation time still eligible at now.
func (d FeedDescriptor) Cutoff(now time.Time) time.Time {
	return now.Add(-time.Duration(d.CutoffDays) * 24 * time.Hour)
}

// Day returns the UTC calendar day, at midnight, that a daily feed covers
// at now: DayOffset days before now's UTC date.
func (d FeedDescriptor) Day(now time.Time) time.Time {
	y, m, day := now.UTC().Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -d.DayOffset)
}

// ThemeConfig holds the user-tunable parts of the menu theme.
type ThemeConfig struct {
	// Font is the monospace family used for aligned item rows.
	Font string `json:"font" yaml:"font"`

	// Size is the point size for item rows.
	Size int `json:"size" yaml:"size"`

	// CopyCommand is the executable invoked as "<cmd> copy <text>" by copy actions.
	CopyCommand string `json:"copy_command" yaml:"copy_command"`
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level"`
}

// Config is the effective configuration for one invocation.
type Config struct {
	HTTP  HTTPConfig     `json:"http" yaml:"http"`
	Feed  FeedDescriptor `json:"feed" yaml:"feed"`
	Theme ThemeConfig    `json:"theme" yaml:"theme"`
	Log   LogConfig      `json:"log" yaml:"log"`
}
