package runtime

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"gitlingo.dev/gitlingo/internal/config"
	"gitlingo.dev/gitlingo/internal/git"
	"gitlingo.dev/gitlingo/internal/i18n"
	"gitlingo.dev/gitlingo/internal/output"
	"gitlingo.dev/gitlingo/internal/tui"
)

// Context provides access to the per-invocation dependencies of an action
type Context struct {
	Context    context.Context
	Config     config.Config
	ActivePath string
	Lang       string
	Splog      *output.Splog
	Printer    *output.Printer
	Localizer  *i18n.Localizer
	Git        git.Runner
	Confirmer  tui.Confirmer
	Editor     tui.Editor
}

// Options describes how to build a Context. Zero-valued collaborators get the
// production implementation.
type Options struct {
	ActivePath    string
	Probe         string
	ConfigPath    string
	Debug         bool
	TranslatorURL string

	// Console receives progress messages. Stdout receives the final status line
	// and defaults to Console.
	Console   io.Writer
	Stdout    io.Writer
	Now       func() time.Time
	Detect    i18n.DetectFunc
	Remote    i18n.Translator
	Git       git.Runner
	Confirmer tui.Confirmer
	Editor    tui.Editor
}

// NewContext loads configuration for opts.ActivePath, detects the language of
// opts.Probe and wires the collaborators.
func NewContext(ctx context.Context, opts Options) (*Context, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(opts.ActivePath, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.TranslatorURL != "" {
		cfg.TranslatorURL = opts.TranslatorURL
	}

	splog, err := output.NewSplogWithOptions(output.Options{
		Console:    opts.Console,
		Debug:      opts.Debug,
		LogFile:    cfg.LogPath(opts.ActivePath),
		LogMaxSize: cfg.LogMaxSize,
		Now:        opts.Now,
	})
	if err != nil {
		return nil, err
	}

	lang, detectErr := i18n.NewDetector(opts.Detect).Detect(opts.Probe)
	if detectErr != nil {
		splog.Debug("Language detection unavailable, using %s: %v", lang, detectErr)
	}
	splog.Info("Detected language: %s, Using translation: en-%s", lang, lang)

	catalog, err := i18n.DefaultCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load message catalog: %w", err)
	}

	remote := opts.Remote
	if remote == nil && cfg.TranslatorURL != "" {
		remote = i18n.NewRemoteTranslator(cfg.TranslatorURL, cfg.TranslatorAPIKey, cfg.TranslatorTimeout)
	}
	localizer := i18n.NewLocalizer(lang, catalog, remote)
	localizer.OnError = func(err error) {
		splog.Debug("Translation unavailable: %v", err)
	}

	rc := &Context{
		Context:    ctx,
		Config:     cfg,
		ActivePath: opts.ActivePath,
		Lang:       lang,
		Splog:      splog,
		Printer:    output.NewPrinter(firstWriter(opts.Stdout, opts.Console, os.Stdout)),
		Localizer:  localizer,
		Git:        opts.Git,
		Confirmer:  opts.Confirmer,
		Editor:     opts.Editor,
	}
	if rc.Git == nil {
		rc.Git = git.NewCommandRunner(cfg.GitTimeout)
	}
	if rc.Confirmer == nil {
		rc.Confirmer = tui.NewStdinConfirmer()
	}
	if rc.Editor == nil {
		rc.Editor = tui.NewExecEditor(cfg.Editor)
	}
	return rc, nil
}

// T localizes a message for the detected language
func (c *Context) T(format string, args ...any) string {
	return c.Localizer.TContext(c.Context, format, args...)
}

func firstWriter(writers ...io.Writer) io.Writer {
	for _, w := range writers {
		if w != nil {
			return w
		}
	}
	return nil
}
