package models

import (
	"net/url"
	"strconv"
)

// ListOptions selects a page of a paginated list endpoint.
// Zero values are omitted and the server defaults apply.
type ListOptions struct {
	Page    int
	PerPage int
}

// Values returns the query parameters for the options.
func (o *ListOptions) Values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	if o.Page > 0 {
		v.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(o.PerPage))
	}
	return v
}

// DownloadOptions tunes a locale download.
type DownloadOptions struct {
	Branch                        string
	Tags                          string
	FallbackLocaleID              string
	IncludeEmptyTranslations      *bool
	IncludeTranslatedKeys         *bool
	IncludeUnverifiedTranslations *bool
	EscapeSingleQuotes            *bool
	SkipUnverifiedTranslations    *bool
	Encoding                      string
}

// Values returns the query parameters for the options.
func (o *DownloadOptions) Values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setString(v, "branch", o.Branch)
	setString(v, "tags", o.Tags)
	setString(v, "fallback_locale_id", o.FallbackLocaleID)
	setString(v, "encoding", o.Encoding)
	setBool(v, "include_empty_translations", o.IncludeEmptyTranslations)
	setBool(v, "include_translated_keys", o.IncludeTranslatedKeys)
	setBool(v, "include_unverified_translations", o.IncludeUnverifiedTranslations)
	setBool(v, "escape_single_quotes", o.EscapeSingleQuotes)
	setBool(v, "skip_unverified_translations", o.SkipUnverifiedTranslations)
	return v
}

func setString(v url.Values, name, value string) {
	if value != "" {
		v.Set(name, value)
	}
}

func setBool(v url.Values, name string, value *bool) {
	if value != nil {
		v.Set(name, strconv.FormatBool(*value))
	}
}
