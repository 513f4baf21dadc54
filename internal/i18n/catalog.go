package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// localeFile is the on-disk shape of one catalog. Keys are the English printf formats.
type localeFile struct {
	Language string            `yaml:"language"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog holds the translations for every supported language.
type Catalog struct {
	builder  *catalog.Builder
	messages map[string]map[string]string
}

// DefaultCatalog loads the catalogs embedded in the binary.
func DefaultCatalog() (*Catalog, error) {
	sub, err := fs.Sub(localeFS, "locales")
	if err != nil {
		return nil, err
	}
	return LoadCatalog(sub)
}

// LoadCatalog reads every *.yaml file at the root of fsys.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	c := &Catalog{
		builder:  catalog.NewBuilder(catalog.Fallback(language.English)),
		messages: make(map[string]map[string]string),
	}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", name, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", path.Base(name), err)
		}
		if err := c.add(file); err != nil {
			return nil, fmt.Errorf("invalid catalog %s: %w", name, err)
		}
	}
	return c, nil
}

func (c *Catalog) add(file localeFile) error {
	lang := Normalize(file.Language)
	if lang == "" {
		return fmt.Errorf("unknown language %q", file.Language)
	}
	tag := language.Make(lang)
	entries := c.messages[lang]
	if entries == nil {
		entries = make(map[string]string, len(file.Messages))
		c.messages[lang] = entries
	}
	for key, msg := range file.Messages {
		if err := c.builder.SetString(tag, key, msg); err != nil {
			return fmt.Errorf("message %q: %w", key, err)
		}
		entries[key] = msg
	}
	return nil
}

// Has reports whether lang has a translation for key.
func (c *Catalog) Has(lang, key string) bool {
	_, ok := c.messages[lang][key]
	return ok
}

// Printer returns an x/text printer bound to this catalog.
func (c *Catalog) Printer(lang string) *message.Printer {
	return message.NewPrinter(language.Make(lang), message.Catalog(c.builder))
}
