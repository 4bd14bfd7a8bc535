// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/hubbar/internal/format"
	"github.com/pdiddy/hubbar/internal/rank"
	"github.com/pdiddy/hubbar/pkg/types"
)

// Top renders two flat rankings over the whole result set, one by likes and
// one by downloads. An item may appear in both.
func (r *Renderer) Top(desc types.FeedDescriptor, records []types.Record) *Menu {
	n := desc.TopN
	if n <= 0 {
		n = 5
	}
	m := &Menu{}
	m.Add(fmt.Sprintf("%s %d new", r.feedIcon(desc), len(records)), 0)
	m.Sep(0)

	r.topSection(m, desc, fmt.Sprintf("Top %d by Likes %s", n, r.Theme.Icon("likes")),
		rank.TopN(records, types.MetricLikes, n))
	m.Sep(0)
	r.topSection(m, desc, fmt.Sprintf("Top %d by Downloads %s", n, r.Theme.Icon("downloads")),
		rank.TopN(records, types.MetricDownloads, n))
	m.Sep(0)

	r.footer(m, desc, records)
	m.Add(fmt.Sprintf("Found %d new %s in last %s", len(records), desc.Noun, days(desc.CutoffDays)), 0,
		Color(r.Theme.Color("default")))
	return m
}

func (r *Renderer) topSection(m *Menu, desc types.FeedDescriptor, title string, items []types.Record) {
	m.Add(title, 0)
	if len(items) == 0 {
		m.Add("No "+desc.Noun+" in this category", 0, Color(r.Theme.Color("default")))
		return
	}
	for _, rec := range items {
		m.Add(r.topText(rec), 0, Href(itemURL(desc, rec)))
	}
}

// topText builds "name • by owner • 3h ago • ↓1.2K ❤️10", leaving out
// empty parts.
func (r *Renderer) topText(rec types.Record) string {
	owner, name := format.SplitOwner(rec.ID)
	parts := []string{format.Sanitize(name, r.Theme.NameWidth)}
	if owner != "" {
		parts = append(parts, "by "+format.Sanitize(owner, r.Theme.NameWidth))
	}
	if rec.HasDate {
		parts = append(parts, format.ShortRelativeTime(rec.CreatedAt, r.Now)+" ago")
	}

	var stats []string
	if d := format.Magnitude(rec.Downloads); d != "" {
		stats = append(stats, r.Theme.Icon("downloads")+d)
	}
	if l := format.Magnitude(rec.Likes); l != "" {
		stats = append(stats, r.Theme.Icon("likes")+l)
	}
	if len(stats) > 0 {
		parts = append(parts, strings.Join(stats, " "))
	}
	return strings.Join(parts, " • ")
}
