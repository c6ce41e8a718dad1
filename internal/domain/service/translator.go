package service

import "context"

// Language describes one selectable translation target.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Translator translates UI strings through a third-party API. A failed
// translation is never an error for the caller: the original text is
// returned unchanged instead.
type Translator interface {
	// Translate translates a single text into the target language.
	Translate(ctx context.Context, text, target string) (string, error)

	// TranslateBatch translates each unique non-blank text and returns a
	// map of original text to translation.
	TranslateBatch(ctx context.Context, texts []string, target string) (map[string]string, error)

	// Languages lists the supported target languages.
	Languages() []Language
}
