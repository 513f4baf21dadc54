package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// FileName is the configuration file looked up in the active path.
const FileName = ".gitlingo.json"

// Environment variables overriding the configuration file.
const (
	EnvTranslatorURL    = "GITLINGO_TRANSLATOR_URL"
	EnvTranslatorAPIKey = "GITLINGO_TRANSLATOR_API_KEY"
	EnvEditor           = "GITLINGO_EDITOR"
	EnvFallbackBranch   = "GITLINGO_FALLBACK_BRANCH"
	EnvLogMaxSize       = "GITLINGO_LOG_MAX_SIZE"
)

// FileConfig is the on-disk configuration. Unset fields keep their defaults.
type FileConfig struct {
	LogFile           *string `json:"logFile,omitempty"`
	LogMaxSize        *int    `json:"logMaxSize,omitempty"`
	Remote            *string `json:"remote,omitempty"`
	DefaultBranch     *string `json:"defaultBranch,omitempty"`
	FallbackBranch    *string `json:"fallbackBranch,omitempty"`
	DetachedBranch    *string `json:"detachedBranch,omitempty"`
	Editor            *string `json:"editor,omitempty"`
	TranslatorURL     *string `json:"translatorURL,omitempty"`
	TranslatorAPIKey  *string `json:"translatorAPIKey,omitempty"`
	TranslatorTimeout *string `json:"translatorTimeout,omitempty"`
	GitTimeout        *string `json:"gitTimeout,omitempty"`
}

// Config is the resolved configuration for one invocation
type Config struct {
	LogFile           string
	// LogMaxSize rotates the activity log at this many megabytes. Zero never rotates.
	LogMaxSize        int
	Remote            string
	DefaultBranch     string
	FallbackBranch    string
	DetachedBranch    string
	Editor            string
	TranslatorURL     string
	TranslatorAPIKey  string
	TranslatorTimeout time.Duration
	GitTimeout        time.Duration
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		LogFile:           "internet_connection_log.txt",
		Remote:            "origin",
		DefaultBranch:     "Feature/Demo",
		FallbackBranch:    "main",
		DetachedBranch:    "fix-detached-head",
		Editor:            "code",
		TranslatorTimeout: 10 * time.Second,
	}
}

// Load resolves the configuration for activePath. When explicitPath is empty the
// file is FileName inside activePath and may be absent. Environment overrides
// are applied last.
func Load(activePath, explicitPath string) (Config, error) {
	cfg := Default()

	path := explicitPath
	if path == "" {
		path = filepath.Join(activePath, FileName)
	}

	fileCfg, err := ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist) && explicitPath == "":
	case err != nil:
		return cfg, err
	default:
		if err := cfg.apply(fileCfg); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ReadFile parses a configuration file
func ReadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fileCfg FileConfig
	if err := json.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &fileCfg, nil
}

func (c *Config) apply(f *FileConfig) error {
	setString(&c.LogFile, f.LogFile)
	setString(&c.Remote, f.Remote)
	setString(&c.DefaultBranch, f.DefaultBranch)
	setString(&c.FallbackBranch, f.FallbackBranch)
	setString(&c.DetachedBranch, f.DetachedBranch)
	setString(&c.Editor, f.Editor)
	if f.TranslatorURL != nil {
		c.TranslatorURL = *f.TranslatorURL
	}
	if f.TranslatorAPIKey != nil {
		c.TranslatorAPIKey = *f.TranslatorAPIKey
	}
	if f.LogMaxSize != nil && *f.LogMaxSize > 0 {
		c.LogMaxSize = *f.LogMaxSize
	}
	if err := setDuration(&c.TranslatorTimeout, f.TranslatorTimeout); err != nil {
		return fmt.Errorf("translatorTimeout: %w", err)
	}
	if err := setDuration(&c.GitTimeout, f.GitTimeout); err != nil {
		return fmt.Errorf("gitTimeout: %w", err)
	}
	return nil
}

// ApplyEnv overrides settings from the environment
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvTranslatorURL); ok {
		c.TranslatorURL = v
	}
	if v, ok := lookup(EnvTranslatorAPIKey); ok {
		c.TranslatorAPIKey = v
	}
	if v, ok := lookup(EnvEditor); ok && v != "" {
		c.Editor = v
	}
	if v, ok := lookup(EnvFallbackBranch); ok && v != "" {
		c.FallbackBranch = v
	}
	if v, ok := lookup(EnvLogMaxSize); ok && v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size <= 0 {
			return fmt.Errorf("%s must be a positive number of megabytes, got %q", EnvLogMaxSize, v)
		}
		c.LogMaxSize = size
	}
	return nil
}

// LogPath returns the activity log location for activePath
func (c Config) LogPath(activePath string) string {
	if filepath.IsAbs(c.LogFile) {
		return c.LogFile
	}
	return filepath.Join(activePath, c.LogFile)
}

func setString(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *string) error {
	if v == nil || *v == "" {
		return nil
	}
	d, err := time.ParseDuration(*v)
	if err != nil {
		return err
	}
	if d < 0 {
		return fmt.Errorf("must not be negative, got %s", *v)
	}
	*dst = d
	return nil
}
