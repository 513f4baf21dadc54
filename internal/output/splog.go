// Package output writes console lines and the activity log.
package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultLogFileName is the activity log created inside the active path.
const DefaultLogFileName = "internet_connection_log.txt"

// unboundedLogSize is the lumberjack size limit, in megabytes, used when rotation is off.
const unboundedLogSize = math.MaxInt32

// TimestampFormat is the layout of each activity log entry.
const TimestampFormat = "2006-01-02 15:04:05"

// Separator follows every activity log entry.
var Separator = strings.Repeat("-", 40)

// simpleHandler writes messages without timestamps or level prefixes
type simpleHandler struct {
	writer    io.Writer
	debugMode bool
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// activityHandler appends "<timestamp> - <message>" and a separator line per record.
// The writer is closed after every entry so no handle outlives a write.
type activityHandler struct {
	writer io.WriteCloser
	now    func() time.Time
}

func (h *activityHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (h *activityHandler) Handle(_ context.Context, record slog.Record) error {
	entry := fmt.Sprintf("%s - %s\n%s\n", h.now().Format(TimestampFormat), record.Message, Separator)
	_, err := io.WriteString(h.writer, entry)
	return errors.Join(err, h.writer.Close())
}

func (h *activityHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *activityHandler) WithGroup(_ string) slog.Handler {
	return h
}

// createLumberjackLogger creates the activity log writer. A maxSize of zero keeps every
// entry in the one file. A positive maxSize rotates at that many megabytes; backups are
// never pruned.
func createLumberjackLogger(logFilePath string, maxSize int) *lumberjack.Logger {
	if maxSize <= 0 {
		maxSize = unboundedLogSize
	}
	return &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    maxSize,
		MaxBackups: 0,
		MaxAge:     0,
		LocalTime:  true,
		Compress:   false,
	}
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			errs = append(errs, handler.Handle(ctx, record))
		}
	}
	return errors.Join(errs...)
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// Options configures a Splog.
type Options struct {
	// Console receives every message. Defaults to os.Stdout.
	Console io.Writer
	// Debug enables debug lines on the console. DEBUG in the environment also enables them.
	Debug bool
	// LogFile is the activity log path. Empty disables the activity log.
	LogFile string
	// LogMaxSize is the rotation size in megabytes. Zero disables rotation.
	LogMaxSize int
	// Now stamps activity log entries. Defaults to time.Now.
	Now func() time.Time
}

// Splog provides console output and the activity log
type Splog struct {
	logger  *slog.Logger
	logFile string
	lastErr error
}

// NewSplogWithOptions creates a splog with an optional activity log
func NewSplogWithOptions(opts Options) (*Splog, error) {
	writer := opts.Console
	if writer == nil {
		writer = os.Stdout
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	splog := &Splog{logFile: opts.LogFile}

	handlers := []slog.Handler{&simpleHandler{
		writer:    writer,
		debugMode: opts.Debug || os.Getenv("DEBUG") != "",
	}}

	if opts.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.LogFile), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		handlers = append(handlers, &activityHandler{
			writer: createLumberjackLogger(opts.LogFile, opts.LogMaxSize),
			now:    now,
		})
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})
	return splog, nil
}

// LogFile returns the activity log path, or "" when there is none.
func (s *Splog) LogFile() string {
	return s.logFile
}

// Err returns the most recent error writing a message, if any.
func (s *Splog) Err() error {
	return s.lastErr
}

func (s *Splog) logMessage(level slog.Level, msg string) {
	if err := s.logger.Handler().Handle(context.Background(), slog.NewRecord(time.Now(), level, msg, 0)); err != nil {
		s.lastErr = err
	}
}

func format(f string, args []interface{}) string {
	if len(args) == 0 {
		return f
	}
	return fmt.Sprintf(f, args...)
}

// Info writes a message to the console and the activity log
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Info(f string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, format(f, args))
}

// Warn writes a warning to the console and the activity log
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Warn(f string, args ...interface{}) {
	s.logMessage(slog.LevelWarn, format(f, args))
}

// Error writes an error to the console and the activity log
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Error(f string, args ...interface{}) {
	s.logMessage(slog.LevelError, format(f, args))
}

// Debug writes a console-only message shown in debug mode
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Debug(f string, args ...interface{}) {
	s.logMessage(slog.LevelDebug, format(f, args))
}

