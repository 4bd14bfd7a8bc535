// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"fmt"
	"strings"
)

// TransportError aborts a fetch: timeout, connection failure, non-2xx
// status, or a response body that is not the expected JSON shape.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetching %s: %v", redactQuery(e.URL), e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports one field that could not be decoded. It never aborts a
// fetch; the field falls back to its zero value.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("parsing %s %q", e.Field, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

// redactQuery drops the query string so cursors do not flood the menu.
func redactQuery(u string) string {
	if i := strings.IndexByte(u, '?'); i >= 0 {
		return u[:i]
	}
	return u
}
