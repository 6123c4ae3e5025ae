// Package logger wires log/slog with a tint console handler or a JSON handler
// and exposes the key-value Interface injected into use cases and handlers.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/civicdesk/civicdesk/internal/shared/config"
)

var (
	mu          sync.RWMutex
	base        *slog.Logger
	atomicLevel = new(slog.LevelVar)
)

// Init configures the process-wide logger. In debug server mode every level carries
// its source location; otherwise only warnings and errors do.
func Init(cfg *config.LoggerConfig, serverMode string) error {
	atomicLevel.Set(ParseLevel(cfg.Level))

	writer, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}

	sourceLevel := slog.LevelWarn
	if serverMode == "debug" {
		sourceLevel = slog.LevelDebug
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: atomicLevel})
	} else {
		handler = newTintHandler(writer, atomicLevel)
	}

	l := slog.New(newSourceHandler(handler, sourceLevel))
	mu.Lock()
	base = l
	mu.Unlock()
	slog.SetDefault(l)
	return nil
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openOutput(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
}

func newTintHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(w),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	})
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SetLevel changes the minimum level at runtime.
func SetLevel(level slog.Level) {
	atomicLevel.Set(level)
}

// Get returns the process logger, building a console default when Init was never called.
func Get() *slog.Logger {
	mu.RLock()
	l := base
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if base == nil {
		base = slog.New(newSourceHandler(newTintHandler(os.Stdout, atomicLevel), slog.LevelWarn))
	}
	return base
}

func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }
func Debug(msg string, args ...any) { Get().Debug(msg, args...) }

// Fatal logs at error level and exits the process.
func Fatal(msg string, args ...any) {
	Get().Error(msg, args...)
	os.Exit(1)
}

// WithComponent returns a logger tagged with a component name.
func WithComponent(component string) *slog.Logger {
	return Get().With("component", component)
}
