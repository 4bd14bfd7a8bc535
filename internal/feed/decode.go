// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/hubbar/internal/format"
	"github.com/pdiddy/hubbar/pkg/types"
)

// object is one JSON element decoded field by field, so a single malformed
// field degrades to its fallback instead of rejecting the record.
type object map[string]json.RawMessage

// errNotArray reports a top-level body that is valid JSON but not an array.
var errNotArray = errors.New("response body is not a JSON array")

// decodeArray decodes a top-level JSON array without decoding its elements.
// A null body is rejected; "[]" yields an empty, non-nil slice.
func decodeArray(body []byte) ([]json.RawMessage, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(body, &elems); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	if elems == nil {
		return nil, fmt.Errorf("parsing response: %w", errNotArray)
	}
	return elems, nil
}

func decodeObject(raw json.RawMessage) (object, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}
	var o object
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, false
	}
	return o, true
}

func (o object) has(key string) bool {
	raw, ok := o[key]
	return ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// str returns the string at key. Absent, null, and non-string values yield "".
func (o object) str(key string) (string, *ParseError) {
	if !o.has(key) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(o[key], &s); err != nil {
		return "", &ParseError{Field: key, Value: string(o[key]), Err: err}
	}
	return s, nil
}

// count returns the non-negative integer at key. Numeric strings and
// fractional numbers are accepted; anything else yields 0.
func (o object) count(key string) (int, *ParseError) {
	if !o.has(key) {
		return 0, nil
	}
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(o[key]))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, &ParseError{Field: key, Value: string(o[key]), Err: err}
	}
	switch x := v.(type) {
	case json.Number:
		n = x
	case string:
		n = json.Number(strings.TrimSpace(x))
	default:
		return 0, &ParseError{Field: key, Value: string(o[key])}
	}
	i, err := strconv.ParseInt(string(n), 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(string(n), 64)
		if ferr != nil {
			return 0, &ParseError{Field: key, Value: string(o[key]), Err: ferr}
		}
		i = int64(f)
	}
	if i < 0 {
		return 0, nil
	}
	return int(i), nil
}

func (o object) flag(key string) (bool, *ParseError) {
	if !o.has(key) {
		return false, nil
	}
	var b bool
	if err := json.Unmarshal(o[key], &b); err != nil {
		return false, &ParseError{Field: key, Value: string(o[key]), Err: err}
	}
	return b, nil
}

// strs returns the string elements at key, skipping non-string entries.
func (o object) strs(key string) ([]string, *ParseError) {
	if !o.has(key) {
		return nil, nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(o[key], &raw); err != nil {
		return nil, &ParseError{Field: key, Value: string(o[key]), Err: err}
	}
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		var s string
		if json.Unmarshal(r, &s) == nil && s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

func (o object) child(key string) (object, bool) {
	if !o.has(key) {
		return nil, false
	}
	return decodeObject(o[key])
}

// decoder accumulates field-level parse errors while building one record.
type decoder struct {
	errs []*ParseError
}

func (d *decoder) note(err *ParseError) {
	if err != nil {
		d.errs = append(d.errs, err)
	}
}

func (d *decoder) str(o object, keys ...string) string {
	for _, k := range keys {
		s, err := o.str(k)
		d.note(err)
		if s != "" {
			return s
		}
	}
	return ""
}

func (d *decoder) count(o object, keys ...string) int {
	for _, k := range keys {
		if o.has(k) {
			n, err := o.count(k)
			d.note(err)
			return n
		}
	}
	return 0
}

// timestamp parses the first present key; an unparsable value records a
// ParseError and leaves the record undated.
func (d *decoder) timestamp(o object, keys ...string) (time.Time, bool) {
	for _, k := range keys {
		s, err := o.str(k)
		d.note(err)
		if s == "" {
			continue
		}
		t, ok := format.ParseTimestamp(s)
		if !ok {
			d.note(&ParseError{Field: k, Value: s})
		}
		return t, ok
	}
	return time.Time{}, false
}

// listRecord maps one element of a Hub list endpoint onto a Record.
func listRecord(o object) (types.Record, []*ParseError) {
	var d decoder
	var r types.Record
	r.CreatedAt, r.HasDate = d.timestamp(o, "createdAt")
	r.ID = d.str(o, "id", "modelId", "_id")
	if r.ID == "" {
		r.ID = types.UnknownID
	}
	r.Likes = d.count(o, "likes")
	r.Downloads = d.count(o, "downloads")

	tags, err := o.strs("tags")
	d.note(err)
	r.Tags = tags

	r.Description = d.str(o, "description")
	if r.Description == "" {
		if card, ok := o.child("cardData"); ok {
			r.Description = d.str(card, "description", "pretty_name")
		}
	}

	private, err := o.flag("private")
	d.note(err)
	r.Private = private
	return r, d.errs
}

// paperRecord maps one daily papers element onto a Record. The paper body
// is usually nested under "paper"; top-level fields fill whatever it lacks.
func paperRecord(o object) (types.Record, []*ParseError) {
	var d decoder
	p, nested := o.child("paper")
	if !nested {
		p = o
	}

	var r types.Record
	r.CreatedAt, r.HasDate = d.timestamp(p, "publishedAt", "submittedOnDailyAt")
	if !r.HasDate && nested {
		r.CreatedAt, r.HasDate = d.timestamp(o, "publishedAt")
	}

	r.ID = d.str(p, "id")
	if r.ID == "" {
		r.ID = types.UnknownID
	}
	r.Title = format.Squash(d.str(p, "title"))
	if r.Title == "" {
		r.Title = format.Squash(d.str(o, "title"))
	}
	if r.Title == "" {
		r.Title = "Untitled"
	}
	r.Description = d.str(p, "summary")
	if r.Description == "" {
		r.Description = d.str(o, "summary")
	}
	r.Likes = d.count(p, "upvotes")
	r.Comments = d.count(o, "numComments")

	if p.has("authors") {
		var raw []json.RawMessage
		if err := json.Unmarshal(p["authors"], &raw); err != nil {
			d.note(&ParseError{Field: "authors", Value: string(p["authors"]), Err: err})
		}
		for _, a := range raw {
			ao, ok := decodeObject(a)
			if !ok {
				continue
			}
			if name := d.str(ao, "name"); name != "" {
				r.Authors = append(r.Authors, types.Author{Name: name})
			}
		}
	}
	return r, d.errs
}
