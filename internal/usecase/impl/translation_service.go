package impl

import (
	"context"
	"log/slog"

	deliverycontext "crewdesk/internal/delivery/context"
	"crewdesk/internal/domain/service"
	"crewdesk/internal/usecase"
)

// translationService implements the TranslationUsecase interface.
type translationService struct {
	translator service.Translator
	logger     *slog.Logger
}

// NewTranslationService is the constructor for translationService.
func NewTranslationService(
	translator service.Translator,
	logger *slog.Logger,
) usecase.TranslationUsecase {
	return &translationService{translator: translator, logger: logger}
}

func (srv *translationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Translate returns a map of original text to translation.
func (srv *translationService) Translate(ctx context.Context, input usecase.TranslateInput) (map[string]string, error) {
	translated, err := srv.translator.TranslateBatch(ctx, input.Texts, input.TargetLanguage)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("translated batch",
		slog.String("target", input.TargetLanguage),
		slog.Int("count", len(translated)),
	)

	return translated, nil
}

// Languages lists the selectable target languages.
func (srv *translationService) Languages(ctx context.Context) ([]service.Language, error) {
	return srv.translator.Languages(), nil
}
