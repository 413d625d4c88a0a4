package client

import (
	"context"
	"net/http"

	"github.com/Sternrassler/phrase-client/pkg/models"
)

// ListLocales returns the locales of a project.
func (c *Client) ListLocales(ctx context.Context, projectID, branch string) ([]models.Locale, error) {
	if err := required("project id", projectID); err != nil {
		return nil, err
	}

	var locales []models.Locale
	if _, err := c.do(ctx, request{
		operation: "list_locales",
		method:    http.MethodGet,
		path:      endpoint("projects", projectID, "locales"),
		query:     query("branch", branch),
	}, &locales); err != nil {
		return nil, err
	}
	return locales, nil
}

// GetLocale returns a single locale.
func (c *Client) GetLocale(ctx context.Context, projectID, localeID, branch string) (*models.Locale, error) {
	if err := requiredIDs(projectID, localeID); err != nil {
		return nil, err
	}

	var locale models.Locale
	if _, err := c.do(ctx, request{
		operation: "get_locale",
		method:    http.MethodGet,
		path:      endpoint("projects", projectID, "locales", localeID),
		query:     query("branch", branch),
	}, &locale); err != nil {
		return nil, err
	}
	return &locale, nil
}

// CreateLocale creates a locale in a project.
func (c *Client) CreateLocale(ctx context.Context, projectID string, params models.CreateLocale) (*models.Locale, error) {
	if err := required("project id", projectID); err != nil {
		return nil, err
	}

	var locale models.Locale
	if _, err := c.do(ctx, request{
		operation: "create_locale",
		method:    http.MethodPost,
		path:      endpoint("projects", projectID, "locales"),
		body:      params,
	}, &locale); err != nil {
		return nil, err
	}
	return &locale, nil
}

// UpdateLocale updates a locale.
func (c *Client) UpdateLocale(ctx context.Context, projectID, localeID string, params models.UpdateLocale) (*models.Locale, error) {
	if err := requiredIDs(projectID, localeID); err != nil {
		return nil, err
	}

	var locale models.Locale
	if _, err := c.do(ctx, request{
		operation: "update_locale",
		method:    http.MethodPut,
		path:      endpoint("projects", projectID, "locales", localeID),
		body:      params,
	}, &locale); err != nil {
		return nil, err
	}
	return &locale, nil
}

// DeleteLocale deletes a locale and reports whether the API answered 204.
func (c *Client) DeleteLocale(ctx context.Context, projectID, localeID, branch string) (bool, error) {
	if err := requiredIDs(projectID, localeID); err != nil {
		return false, err
	}

	return c.delete(ctx, request{
		operation: "delete_locale",
		method:    http.MethodDelete,
		path:      endpoint("projects", projectID, "locales", localeID),
		query:     query("branch", branch),
	})
}

// DownloadLocale downloads a locale as JSON messages keyed by translation key.
func (c *Client) DownloadLocale(ctx context.Context, projectID, localeID string, opts *models.DownloadOptions) (models.Messages, error) {
	if err := requiredIDs(projectID, localeID); err != nil {
		return nil, err
	}

	q := opts.Values()
	q.Set("file_format", string(models.FormatJSON))

	var messages models.Messages
	if _, err := c.do(ctx, request{
		operation: "download_locale",
		method:    http.MethodGet,
		path:      endpoint("projects", projectID, "locales", localeID, "download"),
		query:     q,
	}, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// DownloadLocaleAs downloads a locale file in the given format and returns
// it unchanged.
func (c *Client) DownloadLocaleAs(ctx context.Context, projectID, localeID string, format models.FileFormat, opts *models.DownloadOptions) ([]byte, error) {
	if err := requiredIDs(projectID, localeID); err != nil {
		return nil, err
	}
	if err := format.Validate(); err != nil {
		return nil, WrapError(KindInvalidArgument, "file format", err)
	}

	q := opts.Values()
	q.Set("file_format", string(format))

	var file []byte
	if _, err := c.do(ctx, request{
		operation: "download_locale",
		method:    http.MethodGet,
		path:      endpoint("projects", projectID, "locales", localeID, "download"),
		query:     q,
		accept:    "*/*",
	}, &file); err != nil {
		return nil, err
	}
	return file, nil
}

// requiredIDs checks a project id followed by a child resource id.
func requiredIDs(projectID, id string) error {
	if err := required("project id", projectID); err != nil {
		return err
	}
	return required("id", id)
}
