package newsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdesk/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.NewsAPI.APIKey = "test-key"
	cfg.NewsAPI.BaseURL = srv.URL

	return NewClient(cfg).(*Client)
}

func TestTopHeadlinesDefaultsToGeneral(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"status":"ok","articles":[]}`))
	})

	body, err := client.TopHeadlines(context.Background(), "", "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","articles":[]}`, string(body))
	assert.Equal(t, "/top-headlines", gotPath)
	assert.Equal(t, []string{"general"}, gotQuery["category"])
	assert.Equal(t, []string{"test-key"}, gotQuery["apiKey"])
	assert.NotContains(t, gotQuery, "country")
}

func TestTopHeadlinesCountryOnlyKeepsAllCategories(t *testing.T) {
	var gotQuery map[string][]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	})

	_, err := client.TopHeadlines(context.Background(), "us", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"us"}, gotQuery["country"])
	assert.NotContains(t, gotQuery, "category")
}

func TestTopHeadlinesPassesFilters(t *testing.T) {
	var gotQuery map[string][]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	})

	_, err := client.TopHeadlines(context.Background(), "us", "technology")
	require.NoError(t, err)
	assert.Equal(t, []string{"us"}, gotQuery["country"])
	assert.Equal(t, []string{"technology"}, gotQuery["category"])
}

func TestEverythingQuotesQuery(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	})

	_, err := client.Everything(context.Background(), "go generics", "")
	require.NoError(t, err)
	assert.Equal(t, "/everything", gotPath)
	assert.Equal(t, []string{`"go generics"`}, gotQuery["q"])
	assert.Equal(t, []string{"publishedAt"}, gotQuery["sortBy"])
}

func TestCitySearchSendsUnquotedQuery(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"totalResults":0}`))
	})

	_, err := client.CitySearch(context.Background(), "Pune India")
	require.NoError(t, err)
	assert.Equal(t, "/everything", gotPath)
	assert.Equal(t, []string{"Pune India"}, gotQuery["q"])
	assert.Equal(t, []string{"publishedAt"}, gotQuery["sortBy"])
	assert.Equal(t, []string{"100"}, gotQuery["pageSize"])
}

func TestUpstreamErrorBodyPassesThrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"error","code":"apiKeyInvalid"}`))
	})

	body, err := client.TopHeadlines(context.Background(), "", "")
	require.NoError(t, err)
	assert.Contains(t, string(body), "apiKeyInvalid")
}

func TestServerErrorIsAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.TopHeadlines(context.Background(), "", "")
	assert.Error(t, err)
}
