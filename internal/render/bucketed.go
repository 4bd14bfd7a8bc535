// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/hubbar/internal/format"
	"github.com/pdiddy/hubbar/internal/rank"
	"github.com/pdiddy/hubbar/pkg/types"
)

// Bucketed renders records grouped by creation day, each group ranked by
// desc.Metric and capped, with one drill-down submenu per item.
func (r *Renderer) Bucketed(desc types.FeedDescriptor, records []types.Record) *Menu {
	buckets := rank.Classify(records, r.Now)
	m := &Menu{}

	icon := r.feedIcon(desc)
	if today := buckets.Count(types.BucketToday); today > 0 {
		m.Add(fmt.Sprintf("%s %d today • %d total", icon, today, len(records)), 0)
	} else {
		m.Add(fmt.Sprintf("%s %d total", icon, len(records)), 0)
	}
	m.Sep(0)

	for _, sec := range rank.Sections(buckets, desc) {
		header := fmt.Sprintf("%s (%d)", sec.Bucket.Label(), sec.Total)
		if len(sec.Items) < sec.Total {
			header = fmt.Sprintf("%s (top %d of %d)", sec.Bucket.Label(), len(sec.Items), sec.Total)
		}
		m.Add(header, 0, Color(r.Theme.Color("header")), Size(r.Theme.Size))
		for _, rec := range sec.Items {
			r.itemRow(m, desc, rec)
		}
		m.Sep(0)
	}

	r.footer(m, desc, records)
	return m
}

// itemRow appends the aligned row for rec and its alternate row, each
// followed by the drill-down block.
func (r *Renderer) itemRow(m *Menu, desc types.FeedDescriptor, rec types.Record) {
	cols := r.Theme.Columns
	owner, name := format.SplitOwner(rec.ID)
	link := itemURL(desc, rec)

	likes := format.Magnitude(rec.Likes)
	if likes != "" {
		likes = r.Theme.Icon("likes") + likes
	}
	downloads := format.Magnitude(rec.Downloads)
	if downloads != "" {
		downloads = r.Theme.Icon("downloads") + downloads
	}
	age := ""
	if rec.HasDate {
		age = format.ShortRelativeTime(rec.CreatedAt, r.Now)
	}

	row := strings.Join([]string{
		format.Fit(format.Sanitize(name, 0), cols.Name),
		format.Fit(format.Sanitize(owner, 0), cols.Owner),
		format.Fit(likes, cols.Likes),
		format.Fit(downloads, cols.Downloads),
		format.Fit(age, cols.Age),
	}, " ")
	m.Add(strings.TrimRight(row, " "), 0, Href(link), Font(r.Theme.Font), Size(r.Theme.Size))
	r.detail(m, desc, rec, link)

	// A submenu nests under the line right above it, so the alternate row
	// carries its own copy.
	alt := fmt.Sprintf("%s • %s likes • %s downloads", format.Sanitize(rec.ID, r.Theme.NameWidth),
		format.Thousands(rec.Likes), format.Thousands(rec.Downloads))
	m.Add(alt, 0, Href(link), Alternate(), Font(r.Theme.Font), Size(r.Theme.Size))
	r.detail(m, desc, rec, link)
}

// detail appends the depth-1 submenu for rec.
func (r *Renderer) detail(m *Menu, desc types.FeedDescriptor, rec types.Record, link string) {
	muted := Color(r.Theme.Color("detail"))

	created := r.Theme.Icon("created") + " Created: unknown"
	if rec.HasDate {
		created = fmt.Sprintf("%s Created %s (%s)", r.Theme.Icon("created"),
			format.RelativeTime(rec.CreatedAt, r.Now), format.Stamp(rec.CreatedAt))
	}
	m.Add(created, 1, muted)

	if rec.Private {
		m.Add(r.Theme.Icon("private")+" Private", 1, muted)
	} else {
		m.Add(r.Theme.Icon("public")+" Public", 1, muted)
	}

	if tags := r.tagList(rec.Tags); tags != "" {
		m.Add(r.Theme.Icon("tags")+" "+tags, 1, muted)
	}

	if lines := format.Wrap(rec.Description, r.Theme.DescWidth, r.Theme.DescLines); len(lines) > 0 {
		m.Sep(1)
		for _, ln := range lines {
			m.Add(ln, 1, muted)
		}
	}

	m.Sep(1)
	m.Add("Open in Browser", 1, Href(link))
	if rec.ID != types.UnknownID {
		m.Add("Browse Files", 1, Href(link+"/tree/main"))
		if attrs := r.copyAttrs(rec.ID); attrs != nil {
			m.Add("Copy ID", 1, attrs...)
		}
		if attrs := r.copyAttrs(link); attrs != nil {
			m.Add("Copy URL", 1, attrs...)
		}
	}
}

// tagList joins up to MaxTags tags, noting how many were left out.
func (r *Renderer) tagList(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	shown := tags
	if r.Theme.MaxTags > 0 && len(shown) > r.Theme.MaxTags {
		shown = shown[:r.Theme.MaxTags]
	}
	parts := make([]string, len(shown))
	for i, t := range shown {
		parts[i] = format.Sanitize(t, 40)
	}
	s := strings.Join(parts, ", ")
	if extra := len(tags) - len(shown); extra > 0 {
		s += fmt.Sprintf(" (+%d more)", extra)
	}
	return s
}
