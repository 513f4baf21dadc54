package i18n

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gitlingoerrors "gitlingo.dev/gitlingo/internal/errors"
)

// DefaultTranslatorTimeout bounds a single remote translation request.
const DefaultTranslatorTimeout = 10 * time.Second

// RemoteTranslator calls a LibreTranslate-compatible HTTP service.
type RemoteTranslator struct {
	Endpoint string
	APIKey   string
	Client   *http.Client
}

// NewRemoteTranslator creates a translator posting to endpoint. A zero timeout uses
// DefaultTranslatorTimeout.
func NewRemoteTranslator(endpoint, apiKey string, timeout time.Duration) *RemoteTranslator {
	if timeout <= 0 {
		timeout = DefaultTranslatorTimeout
	}
	return &RemoteTranslator{
		Endpoint: strings.TrimRight(endpoint, "/"),
		APIKey:   apiKey,
		Client:   &http.Client{Timeout: timeout},
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

// Translate posts text to {Endpoint}/translate. English is returned without a request.
func (t *RemoteTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	if target == DefaultLanguage || strings.TrimSpace(text) == "" {
		return text, nil
	}

	body, err := json.Marshal(translateRequest{
		Q:      text,
		Source: DefaultLanguage,
		Target: target,
		Format: "text",
		APIKey: t.APIKey,
	})
	if err != nil {
		return text, fmt.Errorf("%w: %w", gitlingoerrors.ErrTranslationUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.Endpoint+"/translate", bytes.NewReader(body))
	if err != nil {
		return text, fmt.Errorf("%w: %w", gitlingoerrors.ErrTranslationUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	client := t.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTranslatorTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return text, fmt.Errorf("%w: %w", gitlingoerrors.ErrTranslationUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return text, fmt.Errorf("%w: %w", gitlingoerrors.ErrTranslationUnavailable, err)
	}

	var parsed translateResponse
	decodeErr := json.Unmarshal(data, &parsed)
	if resp.StatusCode != http.StatusOK {
		detail := strings.TrimSpace(string(data))
		if decodeErr == nil && parsed.Error != "" {
			detail = parsed.Error
		}
		return text, fmt.Errorf("%w: translator returned %s: %s", gitlingoerrors.ErrTranslationUnavailable, resp.Status, detail)
	}
	if decodeErr != nil {
		return text, fmt.Errorf("%w: invalid translator response: %w", gitlingoerrors.ErrTranslationUnavailable, decodeErr)
	}
	if parsed.TranslatedText == "" {
		return text, fmt.Errorf("%w: empty translation", gitlingoerrors.ErrTranslationUnavailable)
	}
	return parsed.TranslatedText, nil
}
