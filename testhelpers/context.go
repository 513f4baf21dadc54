package testhelpers

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gitlingo.dev/gitlingo/internal/git"
	"gitlingo.dev/gitlingo/internal/runtime"
	"gitlingo.dev/gitlingo/internal/tui"
)

// FakeEditor records the files it is asked to open.
type FakeEditor struct {
	Command string
	Opened  []string
	Err     error
}

// Name returns the editor command.
func (e *FakeEditor) Name() string {
	return e.Command
}

// Open records path and returns Err.
func (e *FakeEditor) Open(_ context.Context, path string) error {
	if e.Err != nil {
		return e.Err
	}
	e.Opened = append(e.Opened, path)
	return nil
}

// TestContext is a runtime context with the fakes behind it exposed.
type TestContext struct {
	Runtime   *runtime.Context
	Console   *bytes.Buffer
	Confirmer *tui.StaticConfirmer
	Editor    *FakeEditor
}

// ContextOption adjusts the runtime options of a test context.
type ContextOption func(*runtime.Options)

// WithLanguage makes language detection return lang.
func WithLanguage(lang string) ContextOption {
	return func(o *runtime.Options) {
		o.Detect = func(string) (string, error) { return lang, nil }
	}
}

// FixedTime is the clock of every test context.
var FixedTime = time.Date(2025, 1, 2, 15, 4, 5, 0, time.Local)

// NewTestContext creates a runtime context for activePath that runs git through runner,
// writes the console to a buffer, declines every confirmation and uses a fake editor.
func NewTestContext(t *testing.T, activePath string, runner git.Runner, opts ...ContextOption) *TestContext {
	t.Helper()

	tc := &TestContext{
		Console:   &bytes.Buffer{},
		Confirmer: &tui.StaticConfirmer{},
		Editor:    &FakeEditor{Command: "code"},
	}
	options := runtime.Options{
		ActivePath: activePath,
		Probe:      "hello",
		Console:    tc.Console,
		Now:        func() time.Time { return FixedTime },
		Detect:     func(string) (string, error) { return "en", nil },
		Git:        runner,
		Confirmer:  tc.Confirmer,
		Editor:     tc.Editor,
	}
	for _, opt := range opts {
		opt(&options)
	}

	ctx, err := runtime.NewContext(t.Context(), options)
	require.NoError(t, err)
	tc.Runtime = ctx
	return tc
}
