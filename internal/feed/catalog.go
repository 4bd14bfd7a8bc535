// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"fmt"
	"sort"

	"github.com/pdiddy/hubbar/pkg/types"
)

// Hub base URLs. Declared as vars so tests can substitute an httptest server.
var (
	hubAPIBase = "https://huggingface.co/api"
	hubWebBase = "https://huggingface.co"
)

const (
	defaultPageSize   = 1000
	defaultMaxPages   = 50
	defaultCutoffDays = 7
)

func bucketCaps() map[types.Bucket]int {
	return map[types.Bucket]int{
		types.BucketToday:     7,
		types.BucketYesterday: 6,
		types.BucketThisWeek:  10,
		types.BucketOlder:     5,
	}
}

func listFeed(name, noun, path string) types.FeedDescriptor {
	return types.FeedDescriptor{
		Name:        name,
		Noun:        noun,
		Kind:        types.KindList,
		Layout:      types.LayoutBucketed,
		Endpoint:    hubAPIBase + "/" + path,
		ItemURL:     hubWebBase + "/" + path + "/",
		BrowseURL:   hubWebBase + "/" + path,
		TrendingURL: hubWebBase + "/" + path + "?sort=trending",
		CutoffDays:  defaultCutoffDays,
		PageSize:    defaultPageSize,
		MaxPages:    defaultMaxPages,
		Metric:      types.MetricLikes,
		BucketCaps:  bucketCaps(),
		TopN:        5,
	}
}

// Datasets is the bucketed feed of recently created datasets.
func Datasets() types.FeedDescriptor {
	return listFeed("datasets", "datasets", "datasets")
}

// Models is the bucketed feed of recently created models. Model URLs have no
// path prefix on the Hub.
func Models() types.FeedDescriptor {
	d := listFeed("models", "models", "models")
	d.ItemURL = hubWebBase + "/"
	return d
}

// Spaces is the bucketed feed of recently created Spaces. Spaces report no
// downloads, so only likes carry signal.
func Spaces() types.FeedDescriptor {
	return listFeed("spaces", "spaces", "spaces")
}

// TopDatasets is the flat Top-N view of the datasets feed: one ranking by
// likes and one by downloads over the whole week.
func TopDatasets() types.FeedDescriptor {
	d := Datasets()
	d.Name = "top"
	d.Layout = types.LayoutTop
	d.BucketCaps = nil
	return d
}

// Papers is the daily papers feed for the previous UTC day.
func Papers() types.FeedDescriptor {
	return types.FeedDescriptor{
		Name:      "papers",
		Noun:      "papers",
		Kind:      types.KindDaily,
		Layout:    types.LayoutPapers,
		Endpoint:  hubAPIBase + "/daily_papers",
		ItemURL:   hubWebBase + "/papers/",
		BrowseURL: hubWebBase + "/papers",
		DayOffset: 1,
		MaxPages:  1,
		Metric:    types.MetricLikes,
		TopN:      10,
	}
}

var catalog = map[string]func() types.FeedDescriptor{
	"datasets": Datasets,
	"models":   Models,
	"spaces":   Spaces,
	"top":      TopDatasets,
	"papers":   Papers,
}

// Names lists the feeds Lookup knows, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a fresh descriptor for the named feed.
func Lookup(name string) (types.FeedDescriptor, error) {
	build, ok := catalog[name]
	if !ok {
		return types.FeedDescriptor{}, fmt.Errorf("unknown feed %q (known: %v)", name, Names())
	}
	return build(), nil
}
