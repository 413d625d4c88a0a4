package client

import (
	"context"
	"net/http"

	"github.com/Sternrassler/phrase-client/pkg/models"
	"github.com/Sternrassler/phrase-client/pkg/pagination"
)

// ListKeys returns one page of the keys of a project.
func (c *Client) ListKeys(ctx context.Context, projectID, branch string, opts *models.ListOptions) ([]models.Key, error) {
	if err := required("project id", projectID); err != nil {
		return nil, err
	}

	q := opts.Values()
	if branch != "" {
		q.Set("branch", branch)
	}

	var keys []models.Key
	if _, err := c.do(ctx, request{
		operation: "list_keys",
		method:    http.MethodGet,
		path:      endpoint("projects", projectID, "keys"),
		query:     q,
	}, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// ListAllKeys returns the keys of every page.
func (c *Client) ListAllKeys(ctx context.Context, projectID, branch string) ([]models.Key, error) {
	if err := required("project id", projectID); err != nil {
		return nil, err
	}

	path := endpoint("projects", projectID, "keys")
	base := query("branch", branch)
	fetch := pagination.PageFunc[models.Key](func(ctx context.Context, page, perPage int) ([]models.Key, int, error) {
		return listPage[models.Key](ctx, c, "list_keys", path, base, page, perPage)
	})
	return pagination.NewBatchFetcher[models.Key](fetch, pagination.DefaultConfig()).
		WithLogger(c.logger).
		FetchAll(ctx)
}

// GetKey returns a single key.
func (c *Client) GetKey(ctx context.Context, projectID, keyID, branch string) (*models.Key, error) {
	if err := requiredIDs(projectID, keyID); err != nil {
		return nil, err
	}

	var key models.Key
	if _, err := c.do(ctx, request{
		operation: "get_key",
		method:    http.MethodGet,
		path:      endpoint("projects", projectID, "keys", keyID),
		query:     query("branch", branch),
	}, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

// CreateKey creates a key. A Screenshot is uploaded as multipart form data.
func (c *Client) CreateKey(ctx context.Context, projectID string, params models.CreateKey) (*models.Key, error) {
	if err := required("project id", projectID); err != nil {
		return nil, err
	}
	if err := required("name", params.Name); err != nil {
		return nil, err
	}

	var key models.Key
	if _, err := c.do(ctx, request{
		operation: "create_key",
		method:    http.MethodPost,
		path:      endpoint("projects", projectID, "keys"),
		body:      params,
	}, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

// UpdateKey updates a key.
func (c *Client) UpdateKey(ctx context.Context, projectID, keyID string, params models.UpdateKey) (*models.Key, error) {
	if err := requiredIDs(projectID, keyID); err != nil {
		return nil, err
	}

	var key models.Key
	if _, err := c.do(ctx, request{
		operation: "update_key",
		method:    http.MethodPut,
		path:      endpoint("projects", projectID, "keys", keyID),
		body:      params,
	}, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

// SearchKeys searches the keys of a project.
func (c *Client) SearchKeys(ctx context.Context, projectID string, params models.SearchKeys) ([]models.Key, error) {
	if err := required("project id", projectID); err != nil {
		return nil, err
	}

	var keys []models.Key
	if _, err := c.do(ctx, request{
		operation: "search_keys",
		method:    http.MethodPost,
		path:      endpoint("projects", projectID, "keys", "search"),
		body:      params,
	}, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// DeleteKey deletes a key and reports whether the API answered 204.
func (c *Client) DeleteKey(ctx context.Context, projectID, keyID, branch string) (bool, error) {
	if err := requiredIDs(projectID, keyID); err != nil {
		return false, err
	}

	return c.delete(ctx, request{
		operation: "delete_key",
		method:    http.MethodDelete,
		path:      endpoint("projects", projectID, "keys", keyID),
		query:     query("branch", branch),
	})
}
