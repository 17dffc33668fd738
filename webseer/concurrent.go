package webseer

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultSearchConcurrency limits how many batch searches run at once.
const DefaultSearchConcurrency = 10

// SearchAll runs an independent Search call for each query, at most
// DefaultSearchConcurrency at a time. Results come back in query order.
// Per-query failures are recorded on the corresponding SearchResult; the
// returned error is reserved for cancellation of the batch itself.
func (c *Client) SearchAll(ctx context.Context, queries []string, opts *SearchOptions) ([]SearchResult, error) {
	results := make([]SearchResult, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultSearchConcurrency)

	for i, query := range queries {
		results[i].Query = query
		g.Go(func() error {
			answer, err := c.Search(ctx, query, opts)
			if err != nil {
				c.logger.Warn().
					Err(err).
					Str("query", query).
					Msg("Search failed")
				results[i].Err = err
				// Continue processing other queries
				return nil
			}
			results[i].Result = answer
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
