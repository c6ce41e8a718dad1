// Package newsapi is a thin client for the NewsAPI.org REST API. The
// upstream response body is passed through unparsed so the caller serves
// it as-is.
package newsapi

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"crewdesk/config"
	"crewdesk/internal/domain/service"
)

// Client implements service.NewsProvider against NewsAPI.org.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config) service.NewsProvider {
	return &Client{
		apiKey:  cfg.NewsAPI.APIKey,
		baseURL: cfg.NewsAPI.BaseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// TopHeadlines fetches trending headlines. The "general" category is
// applied only when neither country nor category is given; empty params
// are otherwise omitted from the request.
func (c *Client) TopHeadlines(ctx context.Context, country, category string) ([]byte, error) {
	if country == "" && category == "" {
		category = "general"
	}

	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}
	if country != "" {
		params.Set("country", country)
	}

	return c.get(ctx, "/top-headlines", params)
}

// Everything searches all articles for the given query. The query is
// sent quoted for exact-phrase matching and results default to newest
// first.
func (c *Client) Everything(ctx context.Context, query, sortBy string) ([]byte, error) {
	if sortBy == "" {
		sortBy = "publishedAt"
	}

	params := url.Values{}
	params.Set("q", `"`+query+`"`)
	params.Set("sortBy", sortBy)

	return c.get(ctx, "/everything", params)
}

// CitySearch searches all articles for a location phrase. Unlike
// Everything the query is sent unquoted so any of its words can match,
// and the page size is raised so the caller can tell an empty result
// from a thin one.
func (c *Client) CitySearch(ctx context.Context, query string) ([]byte, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", "100")

	return c.get(ctx, "/everything", params)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build news request")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call news api")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read news response")
	}

	// NewsAPI reports its own errors as JSON bodies with non-200 status;
	// those still pass through to the caller.
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, errors.Errorf("news api returned status %d", resp.StatusCode)
	}

	return body, nil
}
