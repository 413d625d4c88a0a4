package client

import (
	"context"
	"net/http"

	"github.com/Sternrassler/phrase-client/pkg/models"
)

// ListTranslations returns the translations of a locale.
func (c *Client) ListTranslations(ctx context.Context, projectID, localeID, branch string) ([]models.Translation, error) {
	if err := requiredIDs(projectID, localeID); err != nil {
		return nil, err
	}

	var translations []models.Translation
	if _, err := c.do(ctx, request{
		operation: "list_translations",
		method:    http.MethodGet,
		path:      endpoint("projects", projectID, "locales", localeID, "translations"),
		query:     query("branch", branch),
	}, &translations); err != nil {
		return nil, err
	}
	return translations, nil
}

// CreateTranslation creates the translation of a key in a locale.
func (c *Client) CreateTranslation(ctx context.Context, projectID string, params models.CreateTranslation) (*models.Translation, error) {
	if err := required("project id", projectID); err != nil {
		return nil, err
	}
	if err := required("locale id", params.LocaleID); err != nil {
		return nil, err
	}
	if err := required("key id", params.KeyID); err != nil {
		return nil, err
	}

	var translation models.Translation
	if _, err := c.do(ctx, request{
		operation: "create_translation",
		method:    http.MethodPost,
		path:      endpoint("projects", projectID, "translations"),
		body:      params,
	}, &translation); err != nil {
		return nil, err
	}
	return &translation, nil
}
