// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render lays out feed records as menu text for xbar-style
// status-bar hosts: a summary line, grouped item rows with drill-down
// submenus and action links, and a footer.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/hubbar/internal/format"
	"github.com/pdiddy/hubbar/internal/rank"
	"github.com/pdiddy/hubbar/pkg/types"
)

// errorDetailWidth bounds the error detail line.
const errorDetailWidth = 120

// Renderer builds menus for one invocation. Now anchors every relative
// time so a whole menu is consistent.
type Renderer struct {
	Theme Theme
	Now   time.Time
}

// New returns a Renderer using theme at now.
func New(theme Theme, now time.Time) *Renderer {
	return &Renderer{Theme: theme, Now: now}
}

// Error renders the fetch-failure state: an error summary, the cause, and
// a retry action. No data section is attempted.
func (r *Renderer) Error(desc types.FeedDescriptor, err error) *Menu {
	m := &Menu{}
	red := Color(r.Theme.Color("error"))
	m.Add(r.feedIcon(desc)+" Error", 0, red)
	m.Sep(0)
	m.Add("Failed to fetch "+desc.Noun, 0, red)
	if err != nil {
		m.Add("Error: "+format.Sanitize(err.Error(), errorDetailWidth), 0, red)
	}
	m.Add("Retry", 0, Refresh())
	return m
}

// Empty renders the zero-results state: a zero summary and a refresh action.
func (r *Renderer) Empty(desc types.FeedDescriptor) *Menu {
	m := &Menu{}
	if desc.Kind == types.KindDaily {
		m.Add(r.feedIcon(desc)+" No "+desc.Noun+" today", 0, Color(r.Theme.Color("empty")))
		m.Sep(0)
		m.Add(fmt.Sprintf("No %s available for %s", desc.Noun, format.Date(desc.Day(r.Now))), 0)
	} else {
		m.Add(r.feedIcon(desc)+" 0 new", 0)
		m.Sep(0)
		m.Add(fmt.Sprintf("No new %s in the last %s", desc.Noun, days(desc.CutoffDays)), 0,
			Color(r.Theme.Color("default")))
	}
	m.Add("Refresh", 0, Refresh())
	if desc.BrowseURL != "" {
		m.Add("Browse All "+capitalize(desc.Noun), 0, Href(desc.BrowseURL))
	}
	return m
}

// Feed renders a non-empty result set with the layout desc selects.
func (r *Renderer) Feed(desc types.FeedDescriptor, records []types.Record) *Menu {
	if len(records) == 0 {
		return r.Empty(desc)
	}
	switch desc.Layout {
	case types.LayoutTop:
		return r.Top(desc, records)
	case types.LayoutPapers:
		return r.Papers(desc, records)
	default:
		return r.Bucketed(desc, records)
	}
}

// footer appends the refresh action, browse links, aggregate totals over
// the full result set, and the generation time.
func (r *Renderer) footer(m *Menu, desc types.FeedDescriptor, records []types.Record) {
	m.Add("Refresh", 0, Refresh())
	if desc.BrowseURL != "" {
		m.Add("Browse All "+capitalize(desc.Noun), 0, Href(desc.BrowseURL))
	}
	if desc.TrendingURL != "" {
		m.Add("Trending "+capitalize(desc.Noun), 0, Href(desc.TrendingURL))
	}

	gray := Color(r.Theme.Color("default"))
	likes, downloads := rank.Totals(records)
	if desc.Kind == types.KindDaily {
		m.Add(fmt.Sprintf("%s %s upvotes across %d %s", r.Theme.Icon("upvotes"), format.Thousands(likes), len(records), desc.Noun), 0, gray)
	} else {
		m.Add(fmt.Sprintf("%s %s likes • %s %s downloads", r.Theme.Icon("likes"), format.Thousands(likes),
			r.Theme.Icon("downloads"), format.Thousands(downloads)), 0, gray)
	}
	m.Add("Updated "+format.Stamp(r.Now), 0, gray)
}

// itemURL links to a record's Hub page.
func itemURL(desc types.FeedDescriptor, rec types.Record) string {
	if rec.ID == types.UnknownID || rec.ID == "" {
		return desc.BrowseURL
	}
	return desc.ItemURL + rec.ID
}

// copyAttrs builds the action that copies text through "<cmd> copy <text>".
// Characters outside a shell-safe set are dropped from text; cmd is quoted
// as one shell word when it contains any.
func (r *Renderer) copyAttrs(text string) []Attr {
	safe := shellSafe(text)
	if safe == "" || r.Theme.CopyCommand == "" {
		return nil
	}
	return []Attr{Bash(shellWord(r.Theme.CopyCommand) + " copy " + safe), Terminal(false)}
}

// shellWord single-quotes s unless it is already shell-safe.
func shellWord(s string) string {
	if shellSafe(s) == s {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func shellSafe(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteRune(c)
		case strings.ContainsRune("._-/:+@", c):
			b.WriteRune(c)
		}
	}
	return b.String()
}

func (r *Renderer) feedIcon(desc types.FeedDescriptor) string {
	return r.Theme.Icon(desc.Name)
}

func days(n int) string {
	if n == 1 {
		return "day"
	}
	return fmt.Sprintf("%d days", n)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
