package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"crewdesk/internal/delivery/http/response"
	"crewdesk/internal/usecase"
)

// TranslationHandler holds dependencies for the translation handlers.
type TranslationHandler struct {
	uc usecase.TranslationUsecase
}

// NewTranslationHandler is the constructor for TranslationHandler, injected by Fx.
func NewTranslationHandler(uc usecase.TranslationUsecase) *TranslationHandler {
	return &TranslationHandler{uc: uc}
}

// Translate translates a batch of UI strings.
func (h *TranslationHandler) Translate(c echo.Context) error {
	var input usecase.TranslateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid translation input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	translations, err := h.uc.Translate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"translations": translations}, "")
}

// Languages lists the selectable target languages.
func (h *TranslationHandler) Languages(c echo.Context) error {
	languages, err := h.uc.Languages(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, languages, "")
}
