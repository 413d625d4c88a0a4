package cache

import (
	"net/http"
)

// Header names used for conditional requests.
const (
	HeaderETag        = "ETag"
	HeaderIfNoneMatch = "If-None-Match"
)

// ETagFromResponse returns the validator a response carries, or "".
func ETagFromResponse(resp *http.Response) string {
	if resp == nil {
		return ""
	}
	return resp.Header.Get(HeaderETag)
}

// AddConditionalHeader sets If-None-Match on req when etag is non-empty.
// The header is never sent empty.
func AddConditionalHeader(req *http.Request, etag string) bool {
	if req == nil || etag == "" {
		return false
	}
	req.Header.Set(HeaderIfNoneMatch, etag)
	ConditionalRequestsSent.Inc()
	return true
}
