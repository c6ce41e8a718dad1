package impl

import (
	"context"
	"log/slog"
	"strings"

	json "github.com/goccy/go-json"

	"crewdesk/config"
	deliverycontext "crewdesk/internal/delivery/context"
	domainerrors "crewdesk/internal/domain/errors"
	"crewdesk/internal/domain/service"
	"crewdesk/internal/usecase"
)

// newsService implements the NewsUsecase interface.
type newsService struct {
	provider service.NewsProvider
	cfg      *config.Config
	logger   *slog.Logger
}

// NewNewsService is the constructor for newsService.
func NewNewsService(
	provider service.NewsProvider,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NewsUsecase {
	return &newsService{provider: provider, cfg: cfg, logger: logger}
}

func (srv *newsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Headlines routes the query: a free-text query searches all articles,
// anything else fetches top headlines.
func (srv *newsService) Headlines(ctx context.Context, query usecase.NewsQuery) ([]byte, error) {
	if srv.cfg.NewsAPI.APIKey == "" {
		return nil, domainerrors.ErrNewsAPIKeyMissing
	}

	if query.Query != "" {
		return srv.Search(ctx, query.Query, "")
	}

	body, err := srv.provider.TopHeadlines(ctx, query.Country, query.Category)
	if err != nil {
		srv.log(ctx).Error("top headlines failed", slog.Any("error", err))

		return nil, domainerrors.ErrNewsUnavailable.WithDetails(err.Error())
	}

	return body, nil
}

// Search searches all articles for the query.
func (srv *newsService) Search(ctx context.Context, query, sortBy string) ([]byte, error) {
	if srv.cfg.NewsAPI.APIKey == "" {
		return nil, domainerrors.ErrNewsAPIKeyMissing
	}

	body, err := srv.provider.Everything(ctx, query, sortBy)
	if err != nil {
		srv.log(ctx).Error("news search failed", slog.Any("error", err))

		return nil, domainerrors.ErrNewsUnavailable.WithDetails(err.Error())
	}

	return body, nil
}

// CityNews searches articles for "city country". When the combined query
// matches nothing and a country was given, a country-wide search is
// tried before settling for the empty result.
func (srv *newsService) CityNews(ctx context.Context, city, country string) ([]byte, error) {
	if srv.cfg.NewsAPI.APIKey == "" {
		return nil, domainerrors.ErrNewsAPIKeyMissing
	}

	query := strings.TrimSpace(strings.Join([]string{city, country}, " "))
	if query == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("city or country is required")
	}

	body, err := srv.provider.CitySearch(ctx, query)
	if err != nil {
		srv.log(ctx).Error("city news failed", slog.Any("error", err))

		return nil, domainerrors.ErrNewsUnavailable.WithDetails(err.Error())
	}

	if city == "" || country == "" || newsTotalResults(body) > 0 {
		return body, nil
	}

	fallback, err := srv.provider.CitySearch(ctx, country)
	if err != nil {
		srv.log(ctx).Warn("country fallback failed", slog.Any("error", err))

		return body, nil
	}

	return fallback, nil
}

func newsTotalResults(body []byte) int {
	var payload struct {
		TotalResults int `json:"totalResults"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0
	}

	return payload.TotalResults
}
