package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"crewdesk/internal/usecase"
)

// NewsHandler holds dependencies for the news proxy handlers.
type NewsHandler struct {
	uc usecase.NewsUsecase
}

// NewNewsHandler is the constructor for NewsHandler, injected by Fx.
func NewNewsHandler(uc usecase.NewsUsecase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

// Headlines proxies the headlines request. The upstream JSON body is
// returned as-is rather than wrapped in the response envelope.
func (h *NewsHandler) Headlines(c echo.Context) error {
	body, err := h.uc.Headlines(c.Request().Context(), usecase.NewsQuery{
		Country:  c.QueryParam("country"),
		Category: c.QueryParam("category"),
		Query:    c.QueryParam("query"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSONBlob(http.StatusOK, body)
}

// Search proxies a free-text article search.
func (h *NewsHandler) Search(c echo.Context) error {
	body, err := h.uc.Search(c.Request().Context(), c.QueryParam("query"), c.QueryParam("sortBy"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSONBlob(http.StatusOK, body)
}

// CityNews proxies a city-scoped search with a country-wide fallback.
func (h *NewsHandler) CityNews(c echo.Context) error {
	body, err := h.uc.CityNews(c.Request().Context(), c.QueryParam("city"), c.QueryParam("country"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSONBlob(http.StatusOK, body)
}
