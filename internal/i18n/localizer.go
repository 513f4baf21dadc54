package i18n

import (
	"context"
	"fmt"

	"golang.org/x/text/message"
)

// Localizer formats messages for one detected language. It is built once per
// invocation and passed to whatever needs to produce user-facing text.
type Localizer struct {
	lang    string
	catalog *Catalog
	printer *message.Printer
	remote  Translator

	// OnError receives every translation failure. The untranslated text is used regardless.
	OnError func(error)
}

// NewLocalizer creates a localizer for lang. Both cat and remote may be nil.
func NewLocalizer(lang string, cat *Catalog, remote Translator) *Localizer {
	l := &Localizer{lang: lang, catalog: cat, remote: remote}
	if cat != nil && lang != DefaultLanguage {
		l.printer = cat.Printer(lang)
	}
	return l
}

// T formats format with args in the localizer's language.
func (l *Localizer) T(format string, args ...any) string {
	return l.TContext(context.Background(), format, args...)
}

// TContext is T with a context for the remote translator.
func (l *Localizer) TContext(ctx context.Context, format string, args ...any) string {
	english := fmt.Sprintf(format, args...)
	if l == nil || l.lang == DefaultLanguage {
		return english
	}

	if l.printer != nil && l.catalog.Has(l.lang, format) {
		return l.printer.Sprintf(format, args...)
	}

	if l.remote == nil {
		return english
	}
	translated, err := l.remote.Translate(ctx, english, l.lang)
	if err != nil {
		if l.OnError != nil {
			l.OnError(err)
		}
		return english
	}
	return translated
}
