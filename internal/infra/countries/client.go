// Package countries imports the world country list from the REST
// Countries API for seeding the location directory.
package countries

import (
	"context"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"crewdesk/config"
	"crewdesk/internal/domain/entity"
	"crewdesk/internal/domain/service"
)

// Client implements service.CountryDirectory against restcountries.com.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config) service.CountryDirectory {
	return &Client{
		baseURL: cfg.Countries.BaseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

type countryResponse struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	CCA2 string `json:"cca2"`
}

// FetchCountries fetches every country, mapped to location entities of
// type Country.
func (c *Client) FetchCountries(ctx context.Context) ([]entity.Location, error) {
	url := c.baseURL + "/v3.1/all?fields=name,cca2"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build countries request")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call countries api")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("countries api returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read countries response")
	}

	var raw []countryResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.Wrap(err, "decode countries response")
	}

	locations := make([]entity.Location, 0, len(raw))
	for _, country := range raw {
		if country.Name.Common == "" {
			continue
		}
		locations = append(locations, entity.Location{
			Name:        country.Name.Common,
			Type:        entity.LocationTypeCountry,
			CountryCode: country.CCA2,
		})
	}

	return locations, nil
}
