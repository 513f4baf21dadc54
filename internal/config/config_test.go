package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string {
	return &s
}

func writeConfig(path string, fileCfg *FileConfig) error {
	data, err := json.MarshalIndent(fileCfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvTranslatorURL, EnvTranslatorAPIKey, EnvEditor, EnvFallbackBranch, EnvLogMaxSize} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad(t *testing.T) {
	t.Run("returns defaults when the file does not exist", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load(t.TempDir(), "")
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
		require.Equal(t, "origin", cfg.Remote)
		require.Equal(t, "Feature/Demo", cfg.DefaultBranch)
		require.Equal(t, "main", cfg.FallbackBranch)
		require.Equal(t, "fix-detached-head", cfg.DetachedBranch)
		require.Equal(t, "code", cfg.Editor)
		require.Zero(t, cfg.GitTimeout)
		require.Zero(t, cfg.LogMaxSize, "the activity log is not rotated unless asked")
	})

	t.Run("reads the file in the active path", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		require.NoError(t, writeConfig(filepath.Join(dir, FileName), &FileConfig{
			FallbackBranch:    stringPtr("trunk"),
			Editor:            stringPtr("vim"),
			TranslatorURL:     stringPtr("http://localhost:5000"),
			TranslatorTimeout: stringPtr("2s"),
			GitTimeout:        stringPtr("1m"),
		}))

		cfg, err := Load(dir, "")
		require.NoError(t, err)
		require.Equal(t, "trunk", cfg.FallbackBranch)
		require.Equal(t, "vim", cfg.Editor)
		require.Equal(t, "http://localhost:5000", cfg.TranslatorURL)
		require.Equal(t, 2*time.Second, cfg.TranslatorTimeout)
		require.Equal(t, time.Minute, cfg.GitTimeout)
		require.Equal(t, "origin", cfg.Remote)
	})

	t.Run("explicit file must exist", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "missing.json"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("rejects invalid json", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0600))
		_, err := Load(dir, "")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse config")
	})

	t.Run("rejects invalid durations", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		require.NoError(t, writeConfig(filepath.Join(dir, FileName), &FileConfig{GitTimeout: stringPtr("soon")}))
		_, err := Load(dir, "")
		require.Error(t, err)
		require.Contains(t, err.Error(), "gitTimeout")
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		require.NoError(t, writeConfig(filepath.Join(dir, FileName), &FileConfig{Editor: stringPtr("vim")}))
		t.Setenv(EnvEditor, "nano")
		t.Setenv(EnvFallbackBranch, "develop")
		t.Setenv(EnvTranslatorURL, "http://translate.internal")
		t.Setenv(EnvTranslatorAPIKey, "key")
		t.Setenv(EnvLogMaxSize, "5")

		cfg, err := Load(dir, "")
		require.NoError(t, err)
		require.Equal(t, "nano", cfg.Editor)
		require.Equal(t, "develop", cfg.FallbackBranch)
		require.Equal(t, "http://translate.internal", cfg.TranslatorURL)
		require.Equal(t, "key", cfg.TranslatorAPIKey)
		require.Equal(t, 5, cfg.LogMaxSize)
	})

	t.Run("rejects a bad log size", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvLogMaxSize, "-1")
		_, err := Load(t.TempDir(), "")
		require.Error(t, err)
	})
}

func TestLogPath(t *testing.T) {
	cfg := Default()
	require.Equal(t, filepath.Join("/tmp/work", "internet_connection_log.txt"), cfg.LogPath("/tmp/work"))

	cfg.LogFile = "/var/log/gitlingo.txt"
	require.Equal(t, "/var/log/gitlingo.txt", cfg.LogPath("/tmp/work"))
}
