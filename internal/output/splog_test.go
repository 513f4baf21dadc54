package output_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gitlingo.dev/gitlingo/internal/output"
)

func fixedClock() func() time.Time {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 589000000, time.Local)
	return func() time.Time { return ts }
}

func TestActivityLog(t *testing.T) {
	t.Setenv("DEBUG", "")
	dir := t.TempDir()
	logFile := filepath.Join(dir, output.DefaultLogFileName)
	var console bytes.Buffer

	splog, err := output.NewSplogWithOptions(output.Options{
		Console: &console,
		LogFile: logFile,
		Now:     fixedClock(),
	})
	require.NoError(t, err)

	splog.Info("Cloning repository...")
	splog.Error("Error cloning repository. - %s", "fatal: not found")
	splog.Debug("hidden")
	require.NoError(t, splog.Err())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	sep := strings.Repeat("-", 40)
	require.Equal(t,
		"2025-03-14 09:26:53 - Cloning repository...\n"+sep+"\n"+
			"2025-03-14 09:26:53 - Error cloning repository. - fatal: not found\n"+sep+"\n",
		string(data))

	require.Equal(t, "Cloning repository...\nError cloning repository. - fatal: not found\n", console.String())
}

func TestActivityLogAppends(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "activity.txt")
	require.NoError(t, os.WriteFile(logFile, []byte("existing line\n"), 0600))

	for _, msg := range []string{"first", "second"} {
		splog, err := output.NewSplogWithOptions(output.Options{
			Console: &bytes.Buffer{},
			LogFile: logFile,
			Now:     fixedClock(),
		})
		require.NoError(t, err)
		splog.Info(msg)
	}

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Equal(t, []string{
		"existing line",
		"2025-03-14 09:26:53 - first",
		output.Separator,
		"2025-03-14 09:26:53 - second",
		output.Separator,
	}, lines)
}

func TestActivityLogCreatesDirectory(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nested", "work", output.DefaultLogFileName)
	splog, err := output.NewSplogWithOptions(output.Options{Console: &bytes.Buffer{}, LogFile: logFile})
	require.NoError(t, err)
	splog.Info("hello")
	require.FileExists(t, logFile)
	require.Equal(t, logFile, splog.LogFile())
}

func TestDebugOutput(t *testing.T) {
	t.Setenv("DEBUG", "")
	var console bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "log.txt")
	splog, err := output.NewSplogWithOptions(output.Options{Console: &console, Debug: true, LogFile: logFile})
	require.NoError(t, err)

	splog.Debug("translation unavailable: %s", "offline")
	require.Equal(t, "translation unavailable: offline\n", console.String())
	require.NoFileExists(t, logFile, "debug lines are console only")
}

func TestResultPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := output.NewPrinter(&buf)
	p.Result(true, "Repository cloned successfully.")
	p.Result(false, "Error cloning repository.")
	p.Plain("fr")
	require.Equal(t, "Repository cloned successfully.\nError cloning repository.\nfr\n", buf.String())
}
