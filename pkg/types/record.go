// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the hubbar pipeline.
// Implements: Record and Author (data model), Bucket and Metric (ranking),
// FeedDescriptor (feed catalog), Config (configuration snapshot).
package types

import "time"

// UnknownID replaces a missing or empty record identifier.
const UnknownID = "Unknown"

// Author is one paper author as listed by the source.
type Author struct {
	Name string `json:"name" yaml:"name"`
}

// Record is one Hub entry (dataset, model, space, or paper). A Record is
// built once from a single JSON element and is not modified afterwards.
type Record struct {
	// ID is the Hub identifier, often an "owner/name" composite. Never empty;
	// UnknownID when the source omitted it.
	ID string `json:"id" yaml:"id"`

	// Title is the human title (papers only).
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// CreatedAt is the creation timestamp in UTC. Meaningful only when HasDate.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// HasDate is false when createdAt was missing or unparsable.
	HasDate bool `json:"has_date" yaml:"has_date"`

	// Likes is the primary metric (likes, or upvotes for papers).
	Likes int `json:"likes" yaml:"likes"`

	// Downloads is the secondary metric.
	Downloads int `json:"downloads" yaml:"downloads"`

	// Comments counts discussion comments (papers only).
	Comments int `json:"comments,omitempty" yaml:"comments,omitempty"`

	// Tags lists the Hub tags in source order.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Description is the card description or paper summary.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Private reports whether the entry is private.
	Private bool `json:"private" yaml:"private"`

	// Authors lists paper authors in source order.
	Authors []Author `json:"authors,omitempty" yaml:"authors,omitempty"`
}

// Metric selects the record counter used for ranking.
type Metric string

const (
	MetricLikes     Metric = "likes"
	MetricDownloads Metric = "downloads"
)

// Value returns the counter m selects on r. Unknown metrics read as likes.
func (m Metric) Value(r Record) int {
	if m == MetricDownloads {
		return r.Downloads
	}
	return r.Likes
}

// Bucket is a disjoint temporal partition used for grouped display.
type Bucket string

const (
	BucketToday     Bucket = "today"
	BucketYesterday Bucket = "yesterday"
	BucketThisWeek  Bucket = "this_week"
	BucketOlder     Bucket = "older"
)

// AllBuckets lists buckets from newest to oldest. Rendering follows this order.
var AllBuckets = []Bucket{BucketToday, BucketYesterday, BucketThisWeek, BucketOlder}

// Label returns the section heading for b.
func (b Bucket) Label() string {
	switch b {
	case BucketToday:
		return "Today"
	case BucketYesterday:
		return "Yesterday"
	case BucketThisWeek:
		return "This Week"
	default:
		return "Older"
	}
}
