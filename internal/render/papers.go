// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/hubbar/internal/format"
	"github.com/pdiddy/hubbar/internal/rank"
	"github.com/pdiddy/hubbar/pkg/types"
)

const (
	paperTitleWidth = 40
	paperFullWidth  = 60
	paperAuthors    = 3
	recentDays      = 3
	arxivAbsBase    = "https://arxiv.org/abs/"
)

// Papers renders the daily papers feed as a numbered list ranked by
// upvotes, each with a drill-down of authors, summary, and links.
func (r *Renderer) Papers(desc types.FeedDescriptor, records []types.Record) *Menu {
	n := desc.TopN
	if n <= 0 {
		n = 10
	}
	day := desc.Day(r.Now)
	m := &Menu{}

	m.Add(fmt.Sprintf("%s HF Papers (%d)", r.feedIcon(desc), len(records)), 0, Color(r.Theme.Color("ok")))
	m.Sep(0)
	m.Add(fmt.Sprintf("%s Daily Papers for %s", r.Theme.Icon("created"), format.Date(day)), 0,
		Color(r.Theme.Color("header")))
	m.Sep(0)

	for i, rec := range rank.TopN(records, desc.Metric, n) {
		r.paperItem(m, desc, i+1, rec)
	}
	if more := len(records) - n; more > 0 {
		m.Add(fmt.Sprintf("... and %d more %s", more, desc.Noun), 0, Href(desc.BrowseURL+"?date="+format.Date(day)))
	}
	m.Sep(0)

	r.footer(m, desc, records)

	m.Sep(0)
	m.Add("Recent Days", 0)
	for ago := 1; ago <= recentDays; ago++ {
		d := day.AddDate(0, 0, 1-ago)
		m.Add(fmt.Sprintf("%s (%s)", d.Weekday(), format.Date(d)), 1, Href(desc.BrowseURL+"?date="+format.Date(d)))
	}
	return m
}

func (r *Renderer) paperItem(m *Menu, desc types.FeedDescriptor, pos int, rec types.Record) {
	hasID := rec.ID != "" && rec.ID != types.UnknownID
	link := desc.BrowseURL
	if hasID {
		link = desc.ItemURL + rec.ID
	}
	muted := Color(r.Theme.Color("detail"))

	m.Add(fmt.Sprintf("%d. %s", pos, format.Sanitize(rec.Title, paperTitleWidth)), 0, Href(link))

	if len([]rune(rec.Title)) > paperTitleWidth {
		m.Add(format.Sanitize(rec.Title, paperFullWidth), 1, Color(r.Theme.Color("title")))
		m.Sep(1)
	}
	if authors := authorList(rec.Authors); authors != "" {
		m.Add(r.Theme.Icon("authors")+" "+authors, 1, muted)
	}
	if rec.Likes > 0 {
		m.Add(fmt.Sprintf("%s %d upvotes", r.Theme.Icon("upvotes"), rec.Likes), 1, Color(r.Theme.Color("upvotes")))
	}
	if rec.Comments > 0 {
		m.Add(fmt.Sprintf("%s %d comments", r.Theme.Icon("comments"), rec.Comments), 1, muted)
	}
	if rec.HasDate {
		m.Add(fmt.Sprintf("%s Published %s", r.Theme.Icon("created"), format.RelativeTime(rec.CreatedAt, r.Now)), 1, muted)
	}
	for i, ln := range format.Wrap(rec.Description, paperFullWidth, r.Theme.DescLines) {
		if i == 0 {
			ln = r.Theme.Icon("summary") + " " + ln
		}
		m.Add(ln, 1, muted)
	}

	m.Sep(1)
	m.Add("Open on HuggingFace", 1, Href(link))
	if hasID {
		m.Add("Open on arXiv", 1, Href(arxivAbsBase+rec.ID))
		if attrs := r.copyAttrs(rec.ID); attrs != nil {
			m.Add("Copy arXiv ID", 1, attrs...)
		}
	}
}

// authorList names the first authors and summarizes the rest:
// "A, B, C et al. (7 authors)".
func authorList(authors []types.Author) string {
	var names []string
	for _, a := range authors {
		if len(names) == paperAuthors {
			break
		}
		if a.Name != "" {
			names = append(names, format.Sanitize(a.Name, 30))
		}
	}
	s := strings.Join(names, ", ")
	if len(authors) > paperAuthors {
		s += fmt.Sprintf(" et al. (%d authors)", len(authors))
	}
	return s
}
