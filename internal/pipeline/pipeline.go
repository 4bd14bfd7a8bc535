// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives one invocation: fetch a feed, render it, and map
// the outcome to a process exit code.
package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/pdiddy/hubbar/internal/logging"
	"github.com/pdiddy/hubbar/internal/render"
	"github.com/pdiddy/hubbar/pkg/types"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 1
	ExitFetchFailed = 2
)

// Source retrieves the records of one feed. *feed.Fetcher satisfies it.
type Source interface {
	Fetch(ctx context.Context, desc types.FeedDescriptor, now time.Time) ([]types.Record, error)
}

// Options configures a Run.
type Options struct {
	Desc   types.FeedDescriptor
	Source Source
	Theme  render.Theme

	// Now anchors the cutoff, buckets, and relative times. Zero means
	// time.Now().
	Now time.Time

	// JSON writes the result set as JSON instead of menu text.
	JSON bool
}

// ResultSet is the JSON form of one run.
type ResultSet struct {
	Feed      string         `json:"feed"`
	FetchedAt time.Time      `json:"fetched_at"`
	Count     int            `json:"count"`
	Records   []types.Record `json:"records"`
	Error     string         `json:"error,omitempty"`
}

// Run fetches opts.Desc and writes exactly one rendering to w: the feed,
// the zero state, or the error state. It returns ExitFetchFailed when the
// fetch failed and ExitOK otherwise, including for zero results.
func Run(ctx context.Context, opts Options, w io.Writer) int {
	log := logging.From(ctx)
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	records, err := opts.Source.Fetch(ctx, opts.Desc, now)
	code := ExitOK
	if err != nil {
		log.Error("fetch failed", "feed", opts.Desc.Name, "error", err)
		records = nil
		code = ExitFetchFailed
	} else {
		log.Info("fetched feed", "feed", opts.Desc.Name, "records", len(records))
	}

	if opts.JSON {
		if werr := writeJSON(w, opts.Desc, now, records, err); werr != nil {
			log.Error("writing output", "error", werr)
		}
		return code
	}

	r := render.New(opts.Theme, now)
	var menu *render.Menu
	if err != nil {
		menu = r.Error(opts.Desc, err)
	} else {
		menu = r.Feed(opts.Desc, records)
	}
	if _, werr := menu.WriteTo(w); werr != nil {
		log.Error("writing output", "error", werr)
	}
	return code
}

func writeJSON(w io.Writer, desc types.FeedDescriptor, now time.Time, records []types.Record, err error) error {
	out := ResultSet{
		Feed:      desc.Name,
		FetchedAt: now,
		Count:     len(records),
		Records:   records,
	}
	if out.Records == nil {
		out.Records = []types.Record{}
	}
	if err != nil {
		out.Error = err.Error()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
