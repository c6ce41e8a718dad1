package usecase

import "context"

// NewsQuery carries the optional filters of a headlines request.
type NewsQuery struct {
	Country  string
	Category string
	Query    string
}

// NewsUsecase defines the interface for the news proxy. Responses are
// the upstream JSON body, passed through unmodified.
type NewsUsecase interface {
	// Headlines routes the query: a free-text query searches everything,
	// otherwise top headlines are fetched with the given filters.
	Headlines(ctx context.Context, query NewsQuery) ([]byte, error)

	// Search searches all articles for the query with the given ordering.
	Search(ctx context.Context, query, sortBy string) ([]byte, error)

	// CityNews searches articles for a city and country, falling back to
	// a country-wide search when the city query matches nothing.
	CityNews(ctx context.Context, city, country string) ([]byte, error)
}
