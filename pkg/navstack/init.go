// Package navstack provides stack navigation for screen based applications:
// an ordered set of screens where only the top is visible, driven by push,
// pop, popTo, popToRoot and setRoot commands with animated transitions.
//
// The stack itself lives in the stack package and layouts are built and routed
// by the navigator package. This package holds the shared errors and the
// process wide setup: logging, the message locale and default options.
package navstack

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/BrandonKowalski/navstack/pkg/navstack/options"
)

// Options configures navstack initialization. Empty fields fall back to the
// matching environment variable, then to the built-in default.
type Options struct {
	LogPath            string // Full path for log file including filename (creates parent directories)
	LogLevel           string // Application log level: debug, info, warn or error
	Locale             string // BCP 47 tag for listener error messages (e.g. "de")
	DefaultOptionsPath string // TOML, YAML or JSON file with default screen options
}

var (
	defaultsMu     sync.RWMutex
	defaultOptions options.Options
)

// Init configures logging, the message locale and the default options.
// It returns an error only if a default options file was given and could not be loaded.
func Init(opts Options) error {
	if opts.LogPath != "" {
		internal.SetLogPath(opts.LogPath)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	level := firstNonEmpty(opts.LogLevel, os.Getenv(constants.LogLevelEnvVar))
	if level != "" {
		internal.SetRawLogLevel(level)
	}

	internal.SetLocale(firstNonEmpty(opts.Locale, os.Getenv(constants.LocaleEnvVar), constants.DefaultLocale))

	path := firstNonEmpty(opts.DefaultOptionsPath, os.Getenv(constants.DefaultOptionsEnvVar))
	if path == "" {
		return nil
	}
	o, err := options.LoadFile(path)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to load default options", "path", path, "error", err)
		return fmt.Errorf("navstack: default options: %w", err)
	}
	SetDefaultOptions(o)
	internal.GetInternalLogger().Debug("Loaded default options", "path", path)
	return nil
}

// Close flushes and closes the log file, if one was opened.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetLocale switches the language of listener error messages.
func SetLocale(tag string) {
	internal.SetLocale(tag)
}

// DefaultOptions returns the options loaded by Init or set with SetDefaultOptions.
func DefaultOptions() options.Options {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaultOptions
}

// SetDefaultOptions replaces the process wide default options. Stacks and
// navigators created afterwards should be given DefaultOptions().
func SetDefaultOptions(o options.Options) {
	defaultsMu.Lock()
	defaultOptions = o
	defaultsMu.Unlock()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
