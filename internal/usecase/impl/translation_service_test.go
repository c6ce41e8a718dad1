package impl

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdesk/internal/domain/service"
	"crewdesk/internal/usecase"
)

// fakeTranslator upper-cases instead of translating.
type fakeTranslator struct{}

func (fakeTranslator) Translate(_ context.Context, text, _ string) (string, error) {
	return strings.ToUpper(text), nil
}

func (f fakeTranslator) TranslateBatch(ctx context.Context, texts []string, target string) (map[string]string, error) {
	out := make(map[string]string, len(texts))
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		out[text], _ = f.Translate(ctx, text, target)
	}

	return out, nil
}

func (fakeTranslator) Languages() []service.Language {
	return []service.Language{{Code: "en", Name: "English"}, {Code: "es", Name: "Spanish"}}
}

func TestTranslationService_Translate(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewTranslationService(fakeTranslator{}, deps.logger)

	got, err := svc.Translate(context.Background(), usecase.TranslateInput{
		Texts:          []string{"hello", " ", "world"},
		TargetLanguage: "es",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"hello": "HELLO", "world": "WORLD"}, got)
}

func TestTranslationService_Languages(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewTranslationService(fakeTranslator{}, deps.logger)

	langs, err := svc.Languages(context.Background())
	require.NoError(t, err)
	require.Len(t, langs, 2)
	assert.Equal(t, "es", langs[1].Code)
}
