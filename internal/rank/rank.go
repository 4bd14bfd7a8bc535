// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank partitions a result set into temporal buckets and produces
// capped, stably sorted views of it.
package rank

import (
	"sort"
	"time"

	"github.com/pdiddy/hubbar/pkg/types"
)

// BucketOf assigns r to a bucket by comparing UTC calendar dates, not
// elapsed hours: a record from 23:00 UTC is "yesterday" one hour after
// midnight UTC. Future dates count as today; undated records are older.
func BucketOf(r types.Record, now time.Time) types.Bucket {
	if !r.HasDate {
		return types.BucketOlder
	}
	switch days := calendarDays(r.CreatedAt, now); {
	case days <= 0:
		return types.BucketToday
	case days == 1:
		return types.BucketYesterday
	case days < 7:
		return types.BucketThisWeek
	default:
		return types.BucketOlder
	}
}

// calendarDays counts UTC midnights between t and now.
func calendarDays(t, now time.Time) int {
	ty, tm, td := t.UTC().Date()
	ny, nm, nd := now.UTC().Date()
	from := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	to := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// Buckets holds a result set partitioned by bucket. Each bucket keeps the
// input order.
type Buckets struct {
	by map[types.Bucket][]types.Record
}

// Classify places every record in exactly one bucket.
func Classify(records []types.Record, now time.Time) Buckets {
	b := Buckets{by: make(map[types.Bucket][]types.Record, len(types.AllBuckets))}
	for _, r := range records {
		k := BucketOf(r, now)
		b.by[k] = append(b.by[k], r)
	}
	return b
}

// Get returns the records in bucket k, in input order.
func (b Buckets) Get(k types.Bucket) []types.Record {
	return b.by[k]
}

// Count returns the number of records in bucket k.
func (b Buckets) Count(k types.Bucket) int {
	return len(b.by[k])
}

// Len returns the number of records across all buckets.
func (b Buckets) Len() int {
	n := 0
	for _, rs := range b.by {
		n += len(rs)
	}
	return n
}

// Rank returns records sorted by metric, highest first, truncated to limit
// when limit > 0. Equal values keep their input order. The input slice is
// not modified.
func Rank(records []types.Record, metric types.Metric, limit int) []types.Record {
	ranked := make([]types.Record, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return metric.Value(ranked[i]) > metric.Value(ranked[j])
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// TopN ranks the whole result set by one metric. Views for different
// metrics are computed independently and may share members.
func TopN(records []types.Record, metric types.Metric, n int) []types.Record {
	if n <= 0 {
		return nil
	}
	return Rank(records, metric, n)
}

// Section is one ranked bucket ready for display.
type Section struct {
	Bucket types.Bucket
	// Total is the bucket size before the cap.
	Total int
	Items []types.Record
}

// Sections ranks each non-empty bucket by desc.Metric and applies the
// bucket caps. Buckets with a zero cap are omitted. Order follows
// types.AllBuckets.
func Sections(b Buckets, desc types.FeedDescriptor) []Section {
	var out []Section
	for _, k := range types.AllBuckets {
		limit := desc.Cap(k)
		if limit <= 0 || b.Count(k) == 0 {
			continue
		}
		out = append(out, Section{
			Bucket: k,
			Total:  b.Count(k),
			Items:  Rank(b.Get(k), desc.Metric, limit),
		})
	}
	return out
}

// Totals sums both metrics over the full result set.
func Totals(records []types.Record) (likes, downloads int) {
	for _, r := range records {
		likes += r.Likes
		downloads += r.Downloads
	}
	return likes, downloads
}
