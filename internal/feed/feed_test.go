// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/hubbar/internal/httputil"
	"github.com/pdiddy/hubbar/pkg/types"
)

var testNow = time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

func hoursAgo(h int) string {
	return testNow.Add(-time.Duration(h) * time.Hour).Format(time.RFC3339)
}

func dataset(id string, createdAt string, likes int) string {
	return fmt.Sprintf(`{"id":%q,"createdAt":%q,"likes":%d,"downloads":%d,"tags":["license:mit"],"private":false}`,
		id, createdAt, likes, likes*10)
}

// pagedServer serves pages[i] at /api/datasets?page=i, linking each page to
// the next one, and counts requests.
func pagedServer(t *testing.T, pages [][]string, calls *int32) *httptest.Server {
	t.Helper()
	var ts *httptest.Server
	ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		idx := 0
		if p := r.URL.Query().Get("page"); p != "" {
			fmt.Sscanf(p, "%d", &idx)
		}
		if idx >= len(pages) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if idx+1 < len(pages) {
			w.Header().Set("Link", fmt.Sprintf(`<%s/api/datasets?page=%d>; rel="next"`, ts.URL, idx+1))
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, "["+strings.Join(pages[idx], ",")+"]")
	}))
	return ts
}

func useHub(t *testing.T, ts *httptest.Server) {
	t.Helper()
	oldAPI, oldWeb := hubAPIBase, hubWebBase
	hubAPIBase, hubWebBase = ts.URL+"/api", ts.URL
	t.Cleanup(func() { hubAPIBase, hubWebBase = oldAPI, oldWeb })
}

func testFetcher(ts *httptest.Server) *Fetcher {
	return &Fetcher{Client: ts.Client(), UserAgent: "hubbar-test"}
}

func ids(records []types.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

// --- FetchRecent ---

func TestFetchRecent_FirstRequestParameters(t *testing.T) {
	var query map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{
			"limit":     r.URL.Query().Get("limit"),
			"sort":      r.URL.Query().Get("sort"),
			"direction": r.URL.Query().Get("direction"),
			"full":      r.URL.Query().Get("full"),
			"ua":        r.Header.Get("User-Agent"),
			"path":      r.URL.Path,
		}
		fmt.Fprint(w, "[]")
	}))
	defer ts.Close()
	useHub(t, ts)

	records, err := testFetcher(ts).FetchRecent(context.Background(), Datasets(), testNow)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, map[string]string{
		"limit": "1000", "sort": "createdAt", "direction": "-1", "full": "true",
		"ua": "hubbar-test", "path": "/api/datasets",
	}, query)
}

func TestFetchRecent_StopsAtCutoffWithinPage(t *testing.T) {
	var calls int32
	pages := [][]string{
		{
			dataset("a/one", hoursAgo(1), 1),
			dataset("b/two", hoursAgo(30), 2),
			dataset("c/old", hoursAgo(24*8), 3),
			dataset("d/older", hoursAgo(24*9), 4),
		},
		{dataset("e/never", hoursAgo(24*10), 5)},
	}
	ts := pagedServer(t, pages, &calls)
	defer ts.Close()
	useHub(t, ts)

	records, err := testFetcher(ts).FetchRecent(context.Background(), Datasets(), testNow)
	require.NoError(t, err)

	assert.Equal(t, []string{"a/one", "b/two"}, ids(records))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "no request after the cutoff fired")
}

func TestFetchRecent_FollowsNextLinkUntilCutoff(t *testing.T) {
	var calls int32
	pages := [][]string{
		{dataset("p0/a", hoursAgo(1), 1), dataset("p0/b", hoursAgo(2), 1)},
		{dataset("p1/a", hoursAgo(50), 1)},
		{dataset("p2/a", hoursAgo(100), 1), dataset("p2/old", hoursAgo(24*7+1), 1)},
		{dataset("p3/never", hoursAgo(24*8), 1)},
	}
	ts := pagedServer(t, pages, &calls)
	defer ts.Close()
	useHub(t, ts)

	records, err := testFetcher(ts).FetchRecent(context.Background(), Datasets(), testNow)
	require.NoError(t, err)

	assert.Equal(t, []string{"p0/a", "p0/b", "p1/a", "p2/a"}, ids(records))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestFetchRecent_ExhaustedWithoutNextLink(t *testing.T) {
	var calls int32
	pages := [][]string{
		{dataset("a/1", hoursAgo(1), 1)},
		{dataset("a/2", hoursAgo(2), 1)},
	}
	ts := pagedServer(t, pages, &calls)
	defer ts.Close()
	useHub(t, ts)

	records, err := testFetcher(ts).FetchRecent(context.Background(), Datasets(), testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"a/1", "a/2"}, ids(records))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestFetchRecent_CutoffIsInclusive(t *testing.T) {
	var calls int32
	exactly := testNow.Add(-7 * 24 * time.Hour).Format(time.RFC3339)
	pages := [][]string{{dataset("edge/exact", exactly, 1), dataset("edge/past", hoursAgo(24*7+1), 1)}}
	ts := pagedServer(t, pages, &calls)
	defer ts.Close()
	useHub(t, ts)

	records, err := testFetcher(ts).FetchRecent(context.Background(), Datasets(), testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"edge/exact"}, ids(records))
}

func TestFetchRecent_UndatedRecordsKeptWithoutStopping(t *testing.T) {
	var calls int32
	pages := [][]string{{
		dataset("a/dated", hoursAgo(1), 1),
		`{"id":"b/nodate","likes":3}`,
		`{"id":"c/baddate","createdAt":"not a date","likes":"7"}`,
		dataset("d/dated", hoursAgo(3), 1),
		`"not an object"`,
	}}
	ts := pagedServer(t, pages, &calls)
	defer ts.Close()
	useHub(t, ts)

	records, err := testFetcher(ts).FetchRecent(context.Background(), Datasets(), testNow)
	require.NoError(t, err)
	require.Equal(t, []string{"a/dated", "b/nodate", "c/baddate", "d/dated"}, ids(records))

	assert.False(t, records[1].HasDate)
	assert.False(t, records[2].HasDate)
	assert.Equal(t, 7, records[2].Likes, "numeric strings are accepted")
}

func TestFetchRecent_PageLimitBoundsRunawayPaging(t *testing.T) {
	var calls int32
	var ts *httptest.Server
	ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		w.Header().Set("Link", fmt.Sprintf(`<%s/api/datasets?page=%d>; rel="next"`, ts.URL, n))
		fmt.Fprintf(w, "[%s]", dataset(fmt.Sprintf("loop/%d", n), hoursAgo(1), 1))
	}))
	defer ts.Close()
	useHub(t, ts)

	desc := Datasets()
	desc.MaxPages = 3

	records, err := testFetcher(ts).FetchRecent(context.Background(), desc, testNow)
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestFetchRecent_TransportErrorDiscardsPartialResults(t *testing.T) {
	var ts *httptest.Server
	ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "" {
			w.Header().Set("Link", fmt.Sprintf(`<%s/api/datasets?page=1>; rel="next"`, ts.URL))
			fmt.Fprintf(w, "[%s]", dataset("a/1", hoursAgo(1), 1))
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()
	useHub(t, ts)

	records, err := testFetcher(ts).FetchRecent(context.Background(), Datasets(), testNow)
	require.Error(t, err)
	assert.Nil(t, records)

	var te *TransportError
	require.True(t, errors.As(err, &te))
	var se *httputil.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadGateway, se.Status)
	assert.Contains(t, err.Error(), "HTTP 502")
	assert.NotContains(t, err.Error(), "page=1", "query strings are redacted")
}

func TestFetchRecent_MalformedBodyIsTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":"oops"`)
	}))
	defer ts.Close()
	useHub(t, ts)

	records, err := testFetcher(ts).FetchRecent(context.Background(), Datasets(), testNow)
	require.Error(t, err)
	assert.Nil(t, records)
	var te *TransportError
	assert.True(t, errors.As(err, &te))
}

func TestFetchRecent_NullBodyIsTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `null`)
	}))
	defer ts.Close()
	useHub(t, ts)

	records, err := testFetcher(ts).FetchRecent(context.Background(), Datasets(), testNow)
	require.Error(t, err)
	assert.Nil(t, records)
	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.ErrorIs(t, err, errNotArray)
}

func TestFetchRecent_ConnectionFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	useHub(t, ts)
	client := ts.Client()
	ts.Close()

	_, err := (&Fetcher{Client: client}).FetchRecent(context.Background(), Datasets(), testNow)
	var te *TransportError
	assert.True(t, errors.As(err, &te))
}

// --- FetchDaily ---

const samplePapersJSON = `[
  {
    "paper": {
      "id": "2603.01234",
      "title": "Scaling   Laws\nfor Menus",
      "summary": "We study menus.",
      "upvotes": 42,
      "publishedAt": "2026-03-18T17:59:00.000Z",
      "authors": [{"name": "Ada Lovelace"}, {"name": "Alan Turing"}, {"_id": "x"}]
    },
    "title": "Scaling Laws for Menus",
    "numComments": 3
  },
  {
    "paper": {"id": "2603.04321", "upvotes": "n/a"},
    "title": "Fallback Title",
    "publishedAt": "2026-03-19T08:00:00Z"
  }
]`

func TestFetchDaily_ArrayBody(t *testing.T) {
	var gotDate string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDate = r.URL.Query().Get("date")
		assert.Equal(t, "/api/daily_papers", r.URL.Path)
		fmt.Fprint(w, samplePapersJSON)
	}))
	defer ts.Close()
	useHub(t, ts)

	records, err := testFetcher(ts).Fetch(context.Background(), Papers(), testNow)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-19", gotDate, "yesterday in UTC")
	require.Len(t, records, 2)

	p0 := records[0]
	assert.Equal(t, "2603.01234", p0.ID)
	assert.Equal(t, "Scaling Laws for Menus", p0.Title)
	assert.Equal(t, 42, p0.Likes)
	assert.Equal(t, 3, p0.Comments)
	assert.Equal(t, []types.Author{{Name: "Ada Lovelace"}, {Name: "Alan Turing"}}, p0.Authors)
	assert.True(t, p0.HasDate)

	p1 := records[1]
	assert.Equal(t, "Fallback Title", p1.Title)
	assert.Equal(t, 0, p1.Likes)
	assert.True(t, p1.HasDate, "outer publishedAt fills the gap")
}

func TestFetchDaily_WrappedAndUnknownShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"wrapped", `{"papers":[{"paper":{"id":"1","title":"T"}}]}`, 1},
		{"object without papers", `{"items":[1,2]}`, 0},
		{"papers not an array", `{"papers":"none"}`, 0},
		{"papers null", `{"papers":null}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			}))
			defer ts.Close()
			useHub(t, ts)

			records, err := testFetcher(ts).FetchDaily(context.Background(), Papers(), testNow)
			require.NoError(t, err)
			assert.Len(t, records, tt.want)
		})
	}
}

func TestFetchDaily_MalformedBody(t *testing.T) {
	for _, body := range []string{`<html>`, `null`, `42`} {
		t.Run(body, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, body)
			}))
			defer ts.Close()
			useHub(t, ts)

			records, err := testFetcher(ts).FetchDaily(context.Background(), Papers(), testNow)
			assert.Nil(t, records)
			var te *TransportError
			assert.True(t, errors.As(err, &te))
		})
	}
}

func TestPapersDay(t *testing.T) {
	late := time.Date(2026, 3, 1, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600)) // 2026-03-02 04:30 UTC
	assert.Equal(t, "2026-03-01", Papers().Day(late).Format("2006-01-02"))
}

func TestFetch_UnsupportedKind(t *testing.T) {
	_, err := (&Fetcher{}).Fetch(context.Background(), types.FeedDescriptor{Name: "x", Kind: "rss"}, testNow)
	assert.Error(t, err)
}
