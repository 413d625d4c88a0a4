package models

import "time"

// Locale is a language of a Phrase project.
type Locale struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Code         string     `json:"code"`
	Default      bool       `json:"default"`
	Main         bool       `json:"main"`
	RTL          bool       `json:"rtl"`
	PluralForms  []string   `json:"plural_forms,omitempty"`
	SourceLocale *LocaleRef `json:"source_locale,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// LocaleRef is the short form of a locale embedded in other resources.
type LocaleRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// CreateLocale is the payload of POST /projects/{id}/locales.
type CreateLocale struct {
	Name                        string `json:"name"`
	Code                        string `json:"code"`
	Branch                      string `json:"branch,omitempty"`
	Default                     *bool  `json:"default,omitempty"`
	Main                        *bool  `json:"main,omitempty"`
	RTL                         *bool  `json:"rtl,omitempty"`
	SourceLocaleID              string `json:"source_locale_id,omitempty"`
	UnverifyNewTranslations     *bool  `json:"unverify_new_translations,omitempty"`
	UnverifyUpdatedTranslations *bool  `json:"unverify_updated_translations,omitempty"`
	Autotranslate               *bool  `json:"autotranslate,omitempty"`
}

// UpdateLocale is the payload of PUT /projects/{id}/locales/{locale_id}.
// Empty fields are left unchanged.
type UpdateLocale struct {
	Name                        string `json:"name,omitempty"`
	Code                        string `json:"code,omitempty"`
	Branch                      string `json:"branch,omitempty"`
	Default                     *bool  `json:"default,omitempty"`
	Main                        *bool  `json:"main,omitempty"`
	RTL                         *bool  `json:"rtl,omitempty"`
	SourceLocaleID              string `json:"source_locale_id,omitempty"`
	UnverifyNewTranslations     *bool  `json:"unverify_new_translations,omitempty"`
	UnverifyUpdatedTranslations *bool  `json:"unverify_updated_translations,omitempty"`
	Autotranslate               *bool  `json:"autotranslate,omitempty"`
}

// Messages is the JSON download of a locale: translation key to message.
type Messages map[string]Message

// Message is a single translated message in a JSON download.
type Message struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}
