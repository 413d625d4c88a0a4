package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Sternrassler/phrase-client/pkg/pagination"
)

// listPage fetches one page of a list endpoint and the last page number
// advertised in its Link header.
func listPage[T any](ctx context.Context, c *Client, operation, path string, base url.Values, page, perPage int) ([]T, int, error) {
	q := url.Values{}
	for k, v := range base {
		q[k] = append([]string(nil), v...)
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))

	var items []T
	header, err := c.do(ctx, request{
		operation: operation,
		method:    http.MethodGet,
		path:      path,
		query:     q,
	}, &items)
	if err != nil {
		return nil, 0, err
	}
	return items, pagination.LastPage(header), nil
}
