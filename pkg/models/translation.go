package models

import "time"

// Translation is the content of one key in one locale.
type Translation struct {
	ID           string         `json:"id"`
	Content      string         `json:"content"`
	Unverified   bool           `json:"unverified"`
	Excluded     bool           `json:"excluded"`
	PluralSuffix string         `json:"plural_suffix,omitempty"`
	Key          TranslationKey `json:"key"`
	Locale       LocaleRef      `json:"locale"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// TranslationKey is the short form of a key embedded in a translation.
type TranslationKey struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateTranslation is the payload of POST /projects/{id}/translations.
type CreateTranslation struct {
	LocaleID     string `json:"locale_id"`
	KeyID        string `json:"key_id"`
	Content      string `json:"content"`
	Branch       string `json:"branch,omitempty"`
	PluralSuffix string `json:"plural_suffix,omitempty"`
	Unverified   *bool  `json:"unverified,omitempty"`
	Excluded     *bool  `json:"excluded,omitempty"`
}
