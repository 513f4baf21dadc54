package i18n

import (
	"fmt"
	"strings"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"

	gitlingoerrors "gitlingo.dev/gitlingo/internal/errors"
)

// DefaultLanguage is used whenever detection fails or yields a language without a catalog.
const DefaultLanguage = "en"

// AllowedLanguages are the detected languages that select a translation.
var AllowedLanguages = []string{"fr", "de", "es"}

// DetectFunc is a detection backend. It returns a BCP 47 / ISO 639-1 language code.
type DetectFunc func(text string) (string, error)

// Detector maps free text to one of AllowedLanguages or DefaultLanguage.
type Detector struct {
	backend DetectFunc
	allowed map[string]bool
}

// NewDetector creates a detector over backend. A nil backend uses whatlanggo.
func NewDetector(backend DetectFunc) *Detector {
	if backend == nil {
		backend = WhatlangDetect
	}
	allowed := make(map[string]bool, len(AllowedLanguages))
	for _, tag := range AllowedLanguages {
		allowed[tag] = true
	}
	return &Detector{backend: backend, allowed: allowed}
}

// Detect returns the language tag for text. The tag is always usable; a non-nil error
// matching ErrDetectionUnavailable explains why DefaultLanguage was chosen.
// A result outside AllowedLanguages is not an error.
func (d *Detector) Detect(text string) (tag string, err error) {
	defer func() {
		if r := recover(); r != nil {
			tag = DefaultLanguage
			err = fmt.Errorf("%w: detector panicked: %v", gitlingoerrors.ErrDetectionUnavailable, r)
		}
	}()

	if strings.TrimSpace(text) == "" {
		return DefaultLanguage, fmt.Errorf("%w: empty input", gitlingoerrors.ErrDetectionUnavailable)
	}

	raw, err := d.backend(text)
	if err != nil {
		return DefaultLanguage, fmt.Errorf("%w: %w", gitlingoerrors.ErrDetectionUnavailable, err)
	}

	base := Normalize(raw)
	if !d.allowed[base] {
		return DefaultLanguage, nil
	}
	return base, nil
}

// Normalize reduces a language code to its lower-case base language ("fr-CA" → "fr").
// Unparseable codes normalize to the empty string.
func Normalize(code string) string {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}

var whatlangCodes = map[whatlanggo.Lang]string{
	whatlanggo.Eng: "en",
	whatlanggo.Fra: "fr",
	whatlanggo.Deu: "de",
	whatlanggo.Spa: "es",
}

var whatlangOptions = whatlanggo.Options{
	Whitelist: map[whatlanggo.Lang]bool{
		whatlanggo.Eng: true,
		whatlanggo.Fra: true,
		whatlanggo.Deu: true,
		whatlanggo.Spa: true,
	},
}

// WhatlangDetect is the default backend. A reliable result over every language wins,
// so text in a language without a catalog is reported as that language. Otherwise the
// candidates are narrowed to English and the allowed languages, and that result must
// be reliable too.
func WhatlangDetect(text string) (string, error) {
	if info := whatlanggo.Detect(text); info.IsReliable() {
		if code := info.Lang.Iso6391(); code != "" {
			return code, nil
		}
	}

	info := whatlanggo.DetectWithOptions(text, whatlangOptions)
	code, ok := whatlangCodes[info.Lang]
	if !ok || !info.IsReliable() {
		return "", fmt.Errorf("no reliable language detected (confidence %.2f)", info.Confidence)
	}
	return code, nil
}
