// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feed retrieves recent records from the Hugging Face Hub API.
// List feeds (datasets, models, spaces) are cursor-paginated and bounded by
// a recency cutoff; the papers feed is scoped to one calendar day.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pdiddy/hubbar/internal/httputil"
	"github.com/pdiddy/hubbar/internal/logging"
	"github.com/pdiddy/hubbar/pkg/types"
)

const defaultTimeout = 10 * time.Second

// Fetcher performs feed retrieval over HTTP. It holds no state between calls.
type Fetcher struct {
	Client    *http.Client
	UserAgent string
}

// New returns a Fetcher whose client applies cfg.Timeout to every request.
func New(cfg types.HTTPConfig) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Fetcher{
		Client:    &http.Client{Timeout: timeout},
		UserAgent: cfg.UserAgent,
	}
}

// Fetch retrieves the records of desc as of now. On error the returned
// slice is nil: results are all-or-nothing.
func (f *Fetcher) Fetch(ctx context.Context, desc types.FeedDescriptor, now time.Time) ([]types.Record, error) {
	switch desc.Kind {
	case types.KindList:
		return f.FetchRecent(ctx, desc, now)
	case types.KindDaily:
		return f.FetchDaily(ctx, desc, now)
	default:
		return nil, fmt.Errorf("feed %s: unsupported kind %q", desc.Name, desc.Kind)
	}
}

// FetchRecent pages through a list endpoint sorted by creation time,
// newest first, and keeps records created at or after the cutoff. The first
// dated record older than the cutoff ends the whole fetch; the API sort
// guarantees everything after it is older. Undated records are kept and
// never end the fetch. At most desc.MaxPages requests are issued.
func (f *Fetcher) FetchRecent(ctx context.Context, desc types.FeedDescriptor, now time.Time) ([]types.Record, error) {
	log := logging.From(ctx).With("feed", desc.Name)
	cutoff := desc.Cutoff(now)

	pageSize := desc.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	maxPages := desc.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	params := url.Values{
		"limit":     {strconv.Itoa(pageSize)},
		"sort":      {"createdAt"},
		"direction": {"-1"},
		"full":      {"true"},
	}

	records := []types.Record{}
	next := desc.Endpoint
	for page := 1; next != ""; page++ {
		if page > maxPages {
			log.Warn("page limit reached before cutoff", "max_pages", maxPages, "records", len(records))
			break
		}

		resp, err := f.get(ctx, next, params)
		if err != nil {
			return nil, err
		}
		elems, err := decodeArray(resp.Body)
		if err != nil {
			return nil, &TransportError{URL: next, Err: err}
		}
		log.Debug("fetched page", "page", page, "elements", len(elems))

		for i, raw := range elems {
			o, ok := decodeObject(raw)
			if !ok {
				log.Debug("skipping non-object element", "page", page, "index", i)
				continue
			}
			r, perrs := listRecord(o)
			logParseErrors(log, r.ID, perrs)
			if r.HasDate && r.CreatedAt.Before(cutoff) {
				log.Debug("cutoff reached", "page", page, "id", r.ID, "created_at", r.CreatedAt)
				return records, nil
			}
			records = append(records, r)
		}

		// The next link already encodes limit and sort.
		next = resolve(next, httputil.NextLink(resp.Header))
		params = nil
	}
	return records, nil
}

// FetchDaily retrieves the daily papers for desc.Day(now). The body
// is either an array of entries or an object holding them under "papers";
// any other JSON shape yields no records.
func (f *Fetcher) FetchDaily(ctx context.Context, desc types.FeedDescriptor, now time.Time) ([]types.Record, error) {
	log := logging.From(ctx).With("feed", desc.Name)
	date := desc.Day(now).Format("2006-01-02")

	resp, err := f.get(ctx, desc.Endpoint, url.Values{"date": {date}})
	if err != nil {
		return nil, err
	}

	elems, err := dailyElements(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: desc.Endpoint, Err: err}
	}

	records := make([]types.Record, 0, len(elems))
	for i, raw := range elems {
		o, ok := decodeObject(raw)
		if !ok {
			log.Debug("skipping non-object element", "index", i)
			continue
		}
		r, perrs := paperRecord(o)
		logParseErrors(log, r.ID, perrs)
		records = append(records, r)
	}
	log.Debug("fetched daily papers", "date", date, "records", len(records))
	return records, nil
}

func dailyElements(body []byte) ([]json.RawMessage, error) {
	if elems, err := decodeArray(body); err == nil {
		return elems, nil
	}
	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	if wrapped == nil {
		return nil, fmt.Errorf("parsing response: %w", errNotArray)
	}
	papers, ok := wrapped["papers"]
	if !ok {
		return nil, nil
	}
	elems, err := decodeArray(papers)
	if err != nil {
		return nil, nil
	}
	return elems, nil
}

func (f *Fetcher) get(ctx context.Context, rawURL string, params url.Values) (*httputil.Response, error) {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	headers := http.Header{}
	if f.UserAgent != "" {
		headers.Set("User-Agent", f.UserAgent)
	}
	resp, err := httputil.Get(ctx, client, rawURL, params, headers)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}
	return resp, nil
}

// resolve makes a possibly relative next link absolute against the page
// that returned it.
func resolve(base, ref string) string {
	if ref == "" {
		return ""
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

func logParseErrors(log *slog.Logger, id string, errs []*ParseError) {
	for _, err := range errs {
		log.Debug("field fell back to default", "id", id, "error", err)
	}
}
