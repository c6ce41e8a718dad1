package usecase

import (
	"context"

	"crewdesk/internal/domain/service"
)

// TranslateInput is a batch of UI strings to translate.
type TranslateInput struct {
	Texts          []string `json:"texts" validate:"required,min=1"`
	TargetLanguage string   `json:"targetLanguage" validate:"required"`
	SourceLanguage string   `json:"sourceLanguage"`
}

// TranslationUsecase defines the interface for the translation surface.
type TranslationUsecase interface {
	// Translate returns a map of original text to translation. Texts
	// that fail to translate map to themselves.
	Translate(ctx context.Context, input TranslateInput) (map[string]string, error)

	// Languages lists the selectable target languages.
	Languages(ctx context.Context) ([]service.Language, error)
}
