// Package config resolves moodcheck settings from defaults, environment
// variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/abhisek/moodcheck/internal/logging"
	"github.com/abhisek/moodcheck/internal/questionnaire"
	"github.com/abhisek/moodcheck/internal/report"
)

// Config holds all user-facing settings.
type Config struct {
	// Locale selects the built-in questionnaire ("en", "zh").
	Locale string

	// Format is the output format of the score command: text, md or json.
	Format string

	// LogLevel is debug, info, warn or error.
	LogLevel string

	// LogFile, when set, receives JSON log records.
	LogFile string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Locale:   questionnaire.DefaultLocale,
		Format:   string(report.FormatText),
		LogLevel: "info",
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("MOODCHECK_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("MOODCHECK_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("MOODCHECK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("MOODCHECK_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	return cfg
}

// Validate checks every setting names something that exists.
func (c Config) Validate() error {
	var errs []error

	locales, err := questionnaire.Locales()
	if err != nil {
		return fmt.Errorf("list locales: %w", err)
	}
	if !slices.Contains(locales, c.Locale) {
		errs = append(errs, fmt.Errorf("unknown locale %q (available: %v)", c.Locale, locales))
	}

	if !report.Format(c.Format).Valid() {
		errs = append(errs, fmt.Errorf("unknown format %q (want text, md or json)", c.Format))
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Level returns the parsed log level, defaulting to info.
func (c Config) Level() logging.Level {
	l, _ := logging.ParseLevel(c.LogLevel)
	return l
}
