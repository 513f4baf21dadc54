// Package i18n detects the language of free text and localizes status messages.
//
// Messages are keyed by their canonical English printf format. A Localizer formats a
// message through the embedded catalog for the detected language and, when the catalog
// has no entry, may hand the formatted English text to a remote translation service.
// Every failure degrades to English: detection falls back to "en" and translation falls
// back to the untranslated text.
package i18n
