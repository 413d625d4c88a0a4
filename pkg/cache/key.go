package cache

import (
	"net/http"
	"net/url"
	"strings"
)

// RequestKey identifies a logical Phrase API call for caching purposes.
type RequestKey struct {
	// Method is the HTTP method (GET, POST, PUT, DELETE)
	Method string

	// Path is the request path with path parameters already substituted
	// (e.g., "/api/v2/projects/abc/locales"). It never carries a query string.
	Path string

	// Query holds the query parameters. Parameters without values are dropped.
	Query url.Values
}

// NewRequestKey builds a RequestKey. Any query string left on path is
// stripped, and query parameters with no values are dropped.
func NewRequestKey(method, path string, query url.Values) RequestKey {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		path = "/"
	}

	var q url.Values
	for name, values := range query {
		if len(values) == 0 {
			continue
		}
		if q == nil {
			q = make(url.Values, len(query))
		}
		q[name] = append([]string(nil), values...)
	}

	return RequestKey{
		Method: strings.ToUpper(method),
		Path:   path,
		Query:  q,
	}
}

// KeyFromRequest derives the RequestKey of an outgoing request. The path is
// kept escaped so that an id containing "/" stays a single segment.
func KeyFromRequest(req *http.Request) RequestKey {
	return NewRequestKey(req.Method, req.URL.EscapedPath(), req.URL.Query())
}

// String generates a deterministic cache key string.
// Format: METHOD path?name=value&name=value
//
// Query names are sorted; the values of a single name keep their order.
//
// Example:
//
//	GET /api/v2/projects/abc/locales?branch=main
func (k RequestKey) String() string {
	var b strings.Builder
	b.WriteString(k.Method)
	b.WriteByte(' ')
	b.WriteString(k.Path)

	// url.Values.Encode sorts by name and skips names without values
	if encoded := k.Query.Encode(); encoded != "" {
		b.WriteByte('?')
		b.WriteString(encoded)
	}

	return b.String()
}

// Equal reports whether both keys identify the same logical call.
func (k RequestKey) Equal(other RequestKey) bool {
	return k.String() == other.String()
}
