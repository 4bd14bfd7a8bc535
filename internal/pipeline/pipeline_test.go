// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/hubbar/internal/feed"
	"github.com/pdiddy/hubbar/internal/render"
	"github.com/pdiddy/hubbar/pkg/types"
)

var now = time.Date(2026, 3, 20, 1, 0, 0, 0, time.UTC)

// mockSource is a test double that returns fixed records or an error.
type mockSource struct {
	records []types.Record
	err     error
	calls   int
	gotNow  time.Time
}

func (m *mockSource) Fetch(_ context.Context, _ types.FeedDescriptor, at time.Time) ([]types.Record, error) {
	m.calls++
	m.gotNow = at
	return m.records, m.err
}

func run(t *testing.T, src *mockSource, jsonOut bool) (int, string) {
	t.Helper()
	var buf bytes.Buffer
	code := Run(context.Background(), Options{
		Desc:   feed.Datasets(),
		Source: src,
		Theme:  render.DefaultTheme(),
		Now:    now,
		JSON:   jsonOut,
	}, &buf)
	return code, buf.String()
}

func TestRunSuccess(t *testing.T) {
	var records []types.Record
	for i, likes := range []int{10, 3, 7, 1, 9} {
		records = append(records, types.Record{
			ID: "org/today", Likes: likes, CreatedAt: now.Add(-time.Duration(i+1) * time.Minute), HasDate: true,
		})
	}
	for i := 0; i < 7; i++ {
		records = append(records, types.Record{
			ID: "org/older", Likes: 1, CreatedAt: now.Add(-time.Duration(3+i%3) * 24 * time.Hour), HasDate: true,
		})
	}
	src := &mockSource{records: records}

	code, out := run(t, src, false)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, 1, src.calls)
	assert.True(t, src.gotNow.Equal(now))
	assert.True(t, strings.HasPrefix(out, "🤗 5 today • 12 total\n---\n"), out)
	assert.NotContains(t, out, "Error")
}

func TestRunEmpty(t *testing.T) {
	code, out := run(t, &mockSource{records: []types.Record{}}, false)
	assert.Equal(t, ExitOK, code)
	assert.True(t, strings.HasPrefix(out, "🤗 0 new\n---\n"), out)
	assert.Contains(t, out, "No new datasets in the last 7 days")
	assert.Contains(t, out, "Refresh | refresh=true")
}

func TestRunFetchFailure(t *testing.T) {
	src := &mockSource{
		records: []types.Record{{ID: "partial"}},
		err:     &feed.TransportError{URL: "https://huggingface.co/api/datasets?cursor=abc", Err: errors.New("HTTP 503 Service Unavailable")},
	}
	code, out := run(t, src, false)
	assert.Equal(t, ExitFetchFailed, code)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Equal(t, "🤗 Error | color=red", lines[0])
	assert.Contains(t, lines, "Failed to fetch datasets | color=red")
	assert.Contains(t, out, "Error: fetching https://huggingface.co/api/datasets: HTTP 503 Service Unavailable")
	assert.Equal(t, "Retry | refresh=true", lines[len(lines)-1])
	assert.NotContains(t, out, "partial")
	assert.NotContains(t, out, "cursor=abc")
}

func TestRunJSON(t *testing.T) {
	src := &mockSource{records: []types.Record{{ID: "org/a", Likes: 2}}}
	code, out := run(t, src, true)
	require.Equal(t, ExitOK, code)

	var got ResultSet
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "datasets", got.Feed)
	assert.Equal(t, 1, got.Count)
	require.Len(t, got.Records, 1)
	assert.Equal(t, "org/a", got.Records[0].ID)
	assert.Empty(t, got.Error)
}

func TestRunJSONFailure(t *testing.T) {
	code, out := run(t, &mockSource{err: errors.New("boom")}, true)
	assert.Equal(t, ExitFetchFailed, code)

	var got ResultSet
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "boom", got.Error)
	assert.Equal(t, 0, got.Count)
	assert.NotNil(t, got.Records)
}

func TestRunDefaultsNow(t *testing.T) {
	src := &mockSource{}
	var buf bytes.Buffer
	Run(context.Background(), Options{Desc: feed.Papers(), Source: src, Theme: render.DefaultTheme()}, &buf)
	assert.WithinDuration(t, time.Now(), src.gotNow, time.Minute)
	assert.Contains(t, buf.String(), "No papers today")
}
