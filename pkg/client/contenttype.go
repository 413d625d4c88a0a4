package client

import (
	"mime"
	"strings"
)

// ContentFamily is the decode strategy for a response Content-Type.
type ContentFamily int

const (
	// FamilyUnsupported is any media type the client does not handle.
	FamilyUnsupported ContentFamily = iota

	// FamilyJSON bodies are decoded into the caller's target.
	FamilyJSON

	// FamilyRaw bodies are returned as bytes.
	FamilyRaw
)

func (f ContentFamily) String() string {
	switch f {
	case FamilyJSON:
		return "json"
	case FamilyRaw:
		return "raw"
	default:
		return "unsupported"
	}
}

var rawMediaTypes = map[string]struct{}{
	"application/octet-stream":      {},
	"text/plain":                    {},
	"text/csv":                      {},
	"application/xml":               {},
	"text/xml":                      {},
	"application/x-yaml":            {},
	"application/yaml":              {},
	"text/yaml":                     {},
	"application/x-java-properties": {},
	"text/x-gettext-translation":    {},
}

// ParseContentFamily classifies a Content-Type header value and returns
// its bare media type. An empty header is ErrMissingContentType and an
// unparseable or unknown one is ErrUnsupportedContentType.
func ParseContentFamily(header string) (ContentFamily, string, error) {
	if strings.TrimSpace(header) == "" {
		return FamilyUnsupported, "", NewError(KindMissingContentType, "response has no Content-Type")
	}

	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return FamilyUnsupported, "", WrapError(KindUnsupportedContentType, "parse Content-Type "+header, err)
	}

	switch {
	case mediaType == "application/json", mediaType == "text/json", strings.HasSuffix(mediaType, "+json"):
		return FamilyJSON, mediaType, nil
	case strings.HasSuffix(mediaType, "+xml"):
		return FamilyRaw, mediaType, nil
	}
	if _, ok := rawMediaTypes[mediaType]; ok {
		return FamilyRaw, mediaType, nil
	}
	return FamilyUnsupported, mediaType, NewError(KindUnsupportedContentType, "unsupported content type "+mediaType)
}
