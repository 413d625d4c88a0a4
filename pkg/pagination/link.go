package pagination

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// LastPage returns the page number of the rel="last" link in the Link
// header. It returns 1 when the header is absent or has no usable last link,
// since an unpaginated response is a single page.
func LastPage(h http.Header) int {
	for _, header := range h.Values("Link") {
		for _, part := range strings.Split(header, ",") {
			target, rel, ok := parseLink(part)
			if !ok || rel != "last" {
				continue
			}
			u, err := url.Parse(target)
			if err != nil {
				continue
			}
			if page, err := strconv.Atoi(u.Query().Get("page")); err == nil && page > 0 {
				return page
			}
		}
	}
	return 1
}

// parseLink splits one `<target>; rel=name` link value.
func parseLink(s string) (target, rel string, ok bool) {
	segments := strings.Split(strings.TrimSpace(s), ";")
	first := strings.TrimSpace(segments[0])
	if !strings.HasPrefix(first, "<") || !strings.HasSuffix(first, ">") {
		return "", "", false
	}
	target = first[1 : len(first)-1]

	for _, param := range segments[1:] {
		name, value, found := strings.Cut(strings.TrimSpace(param), "=")
		if !found || !strings.EqualFold(strings.TrimSpace(name), "rel") {
			continue
		}
		rel = strings.Trim(strings.TrimSpace(value), `"`)
	}
	return target, rel, rel != ""
}
