package models

import "time"

// Project is a Phrase project.
type Project struct {
	ID                      string    `json:"id"`
	Name                    string    `json:"name"`
	Slug                    string    `json:"slug,omitempty"`
	MainFormat              string    `json:"main_format,omitempty"`
	ProjectImageURL         string    `json:"project_image_url,omitempty"`
	SharesTranslationMemory bool      `json:"shares_translation_memory"`
	Account                 *Account  `json:"account,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// Account is the account a project belongs to.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// CreateProject is the payload of POST /projects.
// When ProjectImage is set the request is sent as multipart/form-data.
type CreateProject struct {
	Name                    string      `json:"name"`
	MainFormat              string      `json:"main_format,omitempty"`
	SharesTranslationMemory *bool       `json:"shares_translation_memory,omitempty"`
	RemoveProjectImage      *bool       `json:"remove_project_image,omitempty"`
	AccountID               string      `json:"account_id,omitempty"`
	ProjectImage            *Attachment `json:"-"`
}

// UpdateProject is the payload of PUT /projects/{id}.
type UpdateProject struct {
	Name                    string      `json:"name,omitempty"`
	MainFormat              string      `json:"main_format,omitempty"`
	SharesTranslationMemory *bool       `json:"shares_translation_memory,omitempty"`
	RemoveProjectImage      *bool       `json:"remove_project_image,omitempty"`
	AccountID               string      `json:"account_id,omitempty"`
	ProjectImage            *Attachment `json:"-"`
}

// Attachments implements Uploadable.
func (p CreateProject) Attachments() map[string]*Attachment {
	return attachments("project_image", p.ProjectImage)
}

// Attachments implements Uploadable.
func (p UpdateProject) Attachments() map[string]*Attachment {
	return attachments("project_image", p.ProjectImage)
}
