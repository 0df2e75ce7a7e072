package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level  string    // optional log level ("debug", "info", etc.)
	Format string    // "console" (default) or "json"
	Output io.Writer // optional writer (defaults to os.Stderr)
}

var (
	mu   sync.Mutex
	once sync.Once
	base zerolog.Logger
)

// Configure initialises the global logger exactly once. Standard output is
// never used: it carries the generated source.
func Configure(cfg Config) {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		base = newLogger(cfg)
	})
}

// Reset replaces the global logger unconditionally. Intended for tests.
func Reset(cfg Config) {
	once.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	base = newLogger(cfg)
}

func newLogger(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	levelName := cfg.Level
	if levelName == "" {
		levelName = os.Getenv("LOG_LEVEL")
	}
	if levelName != "" {
		if parsed, err := zerolog.ParseLevel(levelName); err == nil {
			level = parsed
		}
	}
	zerolog.TimeFieldFormat = time.RFC3339

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}
	format := cfg.Format
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	if format != "json" {
		writer = zerolog.ConsoleWriter{Out: writer, NoColor: true, TimeFormat: time.RFC3339}
	}
	return zerolog.New(writer).Level(level).With().
		Timestamp().
		Str("service", "firestore-gen").
		Logger()
}

func logger() zerolog.Logger {
	Configure(Config{})
	mu.Lock()
	defer mu.Unlock()
	return base
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	return logger()
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return logger().With().Str("component", component).Logger()
}
