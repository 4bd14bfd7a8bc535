// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"net/http"
	"strings"

	"github.com/tomnomnom/linkheader"
)

// NextLink returns the target of the rel="next" relation in the response's
// Link headers (RFC 8288), or "" when there is none.
//
//	Link: <https://huggingface.co/api/datasets?cursor=abc>; rel="next"
//
// A rel value may list several space-separated relation types.
func NextLink(h http.Header) string {
	for _, link := range linkheader.ParseMultiple(h.Values("Link")) {
		for _, rel := range strings.Fields(link.Rel) {
			if strings.EqualFold(rel, "next") {
				return link.URL
			}
		}
	}
	return ""
}
