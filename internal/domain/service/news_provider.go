package service

import "context"

// NewsProvider fetches headlines and search results from a third-party
// news API. The upstream response body is treated as opaque JSON and
// passed through to the caller unmodified.
type NewsProvider interface {
	// TopHeadlines fetches trending headlines, optionally filtered by
	// country and category.
	TopHeadlines(ctx context.Context, country, category string) ([]byte, error)

	// Everything searches all articles for the given query.
	Everything(ctx context.Context, query, sortBy string) ([]byte, error)

	// CitySearch searches all articles for a location phrase, newest
	// first, with a page large enough to judge whether anything matched.
	CitySearch(ctx context.Context, query string) ([]byte, error)
}
