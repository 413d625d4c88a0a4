package client

import (
	"context"
	"net/http"

	"github.com/Sternrassler/phrase-client/pkg/models"
	"github.com/Sternrassler/phrase-client/pkg/pagination"
)

// ListProjects returns one page of the projects the token can access.
func (c *Client) ListProjects(ctx context.Context, opts *models.ListOptions) ([]models.Project, error) {
	var projects []models.Project
	_, err := c.do(ctx, request{
		operation: "list_projects",
		method:    http.MethodGet,
		path:      endpoint("projects"),
		query:     opts.Values(),
	}, &projects)
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// ListAllProjects returns the projects of every page.
func (c *Client) ListAllProjects(ctx context.Context) ([]models.Project, error) {
	fetch := pagination.PageFunc[models.Project](func(ctx context.Context, page, perPage int) ([]models.Project, int, error) {
		return listPage[models.Project](ctx, c, "list_projects", endpoint("projects"), nil, page, perPage)
	})
	return pagination.NewBatchFetcher[models.Project](fetch, pagination.DefaultConfig()).
		WithLogger(c.logger).
		FetchAll(ctx)
}

// GetProject returns a single project.
func (c *Client) GetProject(ctx context.Context, projectID string) (*models.Project, error) {
	if err := required("project id", projectID); err != nil {
		return nil, err
	}

	var project models.Project
	if _, err := c.do(ctx, request{
		operation: "get_project",
		method:    http.MethodGet,
		path:      endpoint("projects", projectID),
	}, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a project. A ProjectImage is uploaded as multipart form data.
func (c *Client) CreateProject(ctx context.Context, params models.CreateProject) (*models.Project, error) {
	if err := required("name", params.Name); err != nil {
		return nil, err
	}

	var project models.Project
	if _, err := c.do(ctx, request{
		operation: "create_project",
		method:    http.MethodPost,
		path:      endpoint("projects"),
		body:      params,
	}, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject updates a project.
func (c *Client) UpdateProject(ctx context.Context, projectID string, params models.UpdateProject) (*models.Project, error) {
	if err := required("project id", projectID); err != nil {
		return nil, err
	}

	var project models.Project
	if _, err := c.do(ctx, request{
		operation: "update_project",
		method:    http.MethodPut,
		path:      endpoint("projects", projectID),
		body:      params,
	}, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject deletes a project and reports whether the API answered 204.
func (c *Client) DeleteProject(ctx context.Context, projectID string) (bool, error) {
	if err := required("project id", projectID); err != nil {
		return false, err
	}

	return c.delete(ctx, request{
		operation: "delete_project",
		method:    http.MethodDelete,
		path:      endpoint("projects", projectID),
	})
}
