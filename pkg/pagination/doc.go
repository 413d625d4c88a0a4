// Package pagination provides parallel fetching of paginated Phrase list endpoints.
//
// Phrase paginates lists with the page and per_page query parameters and
// reports the last page in the Link response header (rel="last"). The batch
// fetcher reads the first page to learn the page count and fetches the
// remaining pages with a bounded number of concurrent requests.
//
// Example usage:
//
//	fetcher := pagination.NewBatchFetcher(pagination.PageFunc[models.Project](
//		func(ctx context.Context, page, perPage int) ([]models.Project, int, error) {
//			return c.listProjectsPage(ctx, page, perPage)
//		}), pagination.DefaultConfig())
//	projects, err := fetcher.FetchAll(ctx)
//
// The batch fetcher:
//   - Fetches the first page to determine the total page count
//   - Fetches the remaining pages with at most MaxConcurrency in flight
//   - Returns items in page order
//   - Stops at the first failing page and returns its error
package pagination
