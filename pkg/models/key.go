package models

import "time"

// Key is a translation key.
type Key struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description,omitempty"`
	NameHash             string    `json:"name_hash,omitempty"`
	Plural               bool      `json:"plural"`
	NamePlural           string    `json:"name_plural,omitempty"`
	DataType             string    `json:"data_type,omitempty"`
	Tags                 []string  `json:"tags,omitempty"`
	MaxCharactersAllowed int       `json:"max_characters_allowed,omitempty"`
	ScreenshotURL        string    `json:"screenshot_url,omitempty"`
	Unformatted          bool      `json:"unformatted"`
	XMLSpacePreserve     bool      `json:"xml_space_preserve"`
	OriginalFile         string    `json:"original_file,omitempty"`
	FormatValueType      string    `json:"format_value_type,omitempty"`
	CommentsCount        int       `json:"comments_count,omitempty"`
	Creator              *User     `json:"creator,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// User is the short form of a Phrase user.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// CreateKey is the payload of POST /projects/{id}/keys.
// When Screenshot is set the request is sent as multipart/form-data.
type CreateKey struct {
	Name                  string      `json:"name"`
	Description           string      `json:"description,omitempty"`
	Branch                string      `json:"branch,omitempty"`
	Tags                  []string    `json:"tags,omitempty"`
	Plural                *bool       `json:"plural,omitempty"`
	NamePlural            string      `json:"name_plural,omitempty"`
	DataType              string      `json:"data_type,omitempty"`
	MaxCharactersAllowed  *int        `json:"max_characters_allowed,omitempty"`
	RemoveScreenshot      *bool       `json:"remove_screenshot,omitempty"`
	Unformatted           *bool       `json:"unformatted,omitempty"`
	XMLSpacePreserve      *bool       `json:"xml_space_preserve,omitempty"`
	OriginalFile          string      `json:"original_file,omitempty"`
	LocalizedFormatString string      `json:"localized_format_string,omitempty"`
	LocalizedFormatKey    string      `json:"localized_format_key,omitempty"`
	Screenshot            *Attachment `json:"-"`
}

// UpdateKey is the payload of PUT /projects/{id}/keys/{key_id}.
// Empty fields are left unchanged.
type UpdateKey struct {
	Name                  string      `json:"name,omitempty"`
	Description           string      `json:"description,omitempty"`
	Branch                string      `json:"branch,omitempty"`
	Tags                  []string    `json:"tags,omitempty"`
	Plural                *bool       `json:"plural,omitempty"`
	NamePlural            string      `json:"name_plural,omitempty"`
	DataType              string      `json:"data_type,omitempty"`
	MaxCharactersAllowed  *int        `json:"max_characters_allowed,omitempty"`
	RemoveScreenshot      *bool       `json:"remove_screenshot,omitempty"`
	Unformatted           *bool       `json:"unformatted,omitempty"`
	XMLSpacePreserve      *bool       `json:"xml_space_preserve,omitempty"`
	OriginalFile          string      `json:"original_file,omitempty"`
	LocalizedFormatString string      `json:"localized_format_string,omitempty"`
	LocalizedFormatKey    string      `json:"localized_format_key,omitempty"`
	Screenshot            *Attachment `json:"-"`
}

// Attachments implements Uploadable.
func (k CreateKey) Attachments() map[string]*Attachment {
	return attachments("screenshot", k.Screenshot)
}

// Attachments implements Uploadable.
func (k UpdateKey) Attachments() map[string]*Attachment {
	return attachments("screenshot", k.Screenshot)
}

// SearchKeys is the payload of POST /projects/{id}/keys/search.
type SearchKeys struct {
	LocaleID string `json:"locale_id,omitempty"`
	Q        string `json:"q,omitempty"`
	Branch   string `json:"branch,omitempty"`
	Sort     string `json:"sort,omitempty"`
	Order    string `json:"order,omitempty"`
}
