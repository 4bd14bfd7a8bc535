// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/hubbar/internal/format"
)

// SeparatorText renders as a horizontal divider in the host menu.
const SeparatorText = "---"

// Attr is one key=value parameter of a menu line.
type Attr struct {
	Key   string
	Value string
}

// Href opens u when the line is clicked.
func Href(u string) Attr { return Attr{"href", u} }

// Color sets the text color, a name or #rrggbb.
func Color(c string) Attr { return Attr{"color", c} }

// Font sets the font family.
func Font(f string) Attr { return Attr{"font", f} }

// Size sets the font size in points.
func Size(n int) Attr { return Attr{"size", strconv.Itoa(n)} }

// Bash runs cmd when the line is clicked.
func Bash(cmd string) Attr { return Attr{"bash", cmd} }

// Terminal controls whether Bash runs in a visible terminal.
func Terminal(on bool) Attr { return Attr{"terminal", strconv.FormatBool(on)} }

// Refresh re-runs the plugin when the line is clicked.
func Refresh() Attr { return Attr{"refresh", "true"} }

// Alternate shows the line in place of the previous one while Option is held.
func Alternate() Attr { return Attr{"alternate", "true"} }

// Line is one directive of the menu grammar:
//
//	[-- ...]<text> | key=value key=value
//
// Depth is the submenu nesting level, written as that many "--" markers.
type Line struct {
	Text  string
	Depth int
	Attrs []Attr
}

// String renders l. The text is sanitized here so no "|" or line break can
// leak into the grammar; empty attribute values are omitted.
func (l Line) String() string {
	var b strings.Builder
	if l.Depth > 0 {
		b.WriteString(strings.Repeat("--", l.Depth))
		b.WriteByte(' ')
	}
	b.WriteString(format.Sanitize(l.Text, 0))

	first := true
	for _, a := range l.Attrs {
		if a.Key == "" || a.Value == "" {
			continue
		}
		if first {
			b.WriteString(" |")
			first = false
		}
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteByte('=')
		b.WriteString(quoteValue(a.Value))
	}
	return b.String()
}

// IsSeparator reports whether l renders as a divider.
func (l Line) IsSeparator() bool {
	return l.Text == SeparatorText && len(l.Attrs) == 0
}

// quoteValue quotes attribute values containing spaces. Line breaks in
// values are flattened to spaces.
func quoteValue(v string) string {
	v = strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
	if !strings.ContainsAny(v, " \t'\"") {
		return v
	}
	if !strings.Contains(v, "'") {
		return "'" + v + "'"
	}
	return `"` + strings.ReplaceAll(v, `"`, `'`) + `"`
}

// Menu is an ordered sequence of lines.
type Menu struct {
	lines []Line
}

// Add appends a line at depth.
func (m *Menu) Add(text string, depth int, attrs ...Attr) {
	m.lines = append(m.lines, Line{Text: text, Depth: depth, Attrs: attrs})
}

// Sep appends a divider at depth.
func (m *Menu) Sep(depth int) {
	m.lines = append(m.lines, Line{Text: SeparatorText, Depth: depth})
}

// Lines returns the menu lines in order.
func (m *Menu) Lines() []Line {
	return m.lines
}

// String renders the menu, one line per directive, newline terminated.
func (m *Menu) String() string {
	var b strings.Builder
	m.WriteTo(&b)
	return b.String()
}

// WriteTo writes the rendered menu to w.
func (m *Menu) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, l := range m.lines {
		k, err := bw.WriteString(l.String() + "\n")
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}
