package models

import "io"

// Attachment is a file uploaded alongside a create or update request.
type Attachment struct {
	Filename string
	Content  io.Reader
}

// Uploadable is implemented by payloads that may carry file attachments.
// A payload with at least one attachment is sent as multipart/form-data.
type Uploadable interface {
	Attachments() map[string]*Attachment
}

func attachments(field string, a *Attachment) map[string]*Attachment {
	if a == nil || a.Content == nil {
		return nil
	}
	return map[string]*Attachment{field: a}
}

// Bool returns a pointer to v, for optional request fields.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for optional request fields.
func Int(v int) *int { return &v }
