package i18n

import "context"

// Translator turns English text into the target language.
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}
