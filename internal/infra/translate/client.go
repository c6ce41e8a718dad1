// Package translate proxies UI-string translation through the public
// Google Translate gtx endpoint, fronting it with an in-memory TTL cache
// so repeated page loads don't re-translate the same strings.
package translate

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"crewdesk/config"
	"crewdesk/internal/domain/service"
)

// supportedLanguages is the fixed set of selectable translation targets.
var supportedLanguages = []service.Language{
	{Code: "en", Name: "English"},
	{Code: "hi", Name: "Hindi"},
	{Code: "mr", Name: "Marathi"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "ja", Name: "Japanese"},
	{Code: "zh-CN", Name: "Chinese"},
	{Code: "ar", Name: "Arabic"},
	{Code: "ru", Name: "Russian"},
}

type cacheEntry struct {
	text    string
	expires time.Time
}

// Client implements service.Translator over the gtx endpoint.
type Client struct {
	baseURL  string
	cacheTTL time.Duration
	httpc    *http.Client
	logger   *slog.Logger
	now      func() time.Time

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config, logger *slog.Logger) service.Translator {
	return &Client{
		baseURL:  cfg.Translation.BaseURL,
		cacheTTL: cfg.Translation.CacheTTL,
		httpc:    &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
		now:      time.Now,
		cache:    make(map[string]cacheEntry),
	}
}

// Translate translates a single text into the target language. Any
// failure degrades to returning the original text unchanged.
func (c *Client) Translate(ctx context.Context, text, target string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || target == "" || target == "en" {
		return text, nil
	}

	key := target + "\x00" + text
	if cached, ok := c.lookup(key); ok {
		return cached, nil
	}

	translated, err := c.fetch(ctx, text, target)
	if err != nil {
		c.logger.Warn("translation failed, returning original text",
			slog.String("target", target),
			slog.Any("error", err),
		)

		return text, nil
	}

	c.store(key, translated)

	return translated, nil
}

// TranslateBatch translates each unique non-blank text and returns a map
// of original text to translation.
func (c *Client) TranslateBatch(ctx context.Context, texts []string, target string) (map[string]string, error) {
	out := make(map[string]string, len(texts))
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		if _, done := out[text]; done {
			continue
		}

		translated, err := c.Translate(ctx, text, target)
		if err != nil {
			return nil, err
		}
		out[text] = translated
	}

	return out, nil
}

// Languages lists the supported target languages.
func (c *Client) Languages() []service.Language {
	return supportedLanguages
}

func (c *Client) lookup(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.cache[key]
	if !ok || c.now().After(entry.expires) {
		return "", false
	}

	return entry.text, true
}

func (c *Client) store(key, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[key] = cacheEntry{text: text, expires: c.now().Add(c.cacheTTL)}
}

func (c *Client) fetch(ctx context.Context, text, target string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	// Source detection; requests may carry any language.
	params.Set("sl", "auto")
	params.Set("tl", target)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", errors.Wrap(err, "build translate request")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "call translate api")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("translate api returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read translate response")
	}

	return parseGtxResponse(body)
}

// parseGtxResponse extracts the translated text from the gtx endpoint's
// nested-array response, e.g. [[["Hola","Hello",...],["mundo","world",...]],...].
// The first element of each inner segment is a chunk of the translation;
// chunks concatenate to the full text.
func parseGtxResponse(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", errors.Wrap(err, "decode translate response")
	}
	if len(payload) == 0 {
		return "", errors.New("empty translate response")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", errors.Wrap(err, "decode translate segments")
	}

	var sb strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		var chunk string
		if err := json.Unmarshal(segment[0], &chunk); err != nil {
			continue
		}
		sb.WriteString(chunk)
	}

	if sb.Len() == 0 {
		return "", errors.New("translate response held no text")
	}

	return sb.String(), nil
}
