// Package config resolves the seqkit CLI configuration from flags and
// environment variables and builds the logger from it.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LogFormat selects the logrus formatter.
type LogFormat string

const (
	// TextFormat writes logfmt-style lines without colors.
	TextFormat LogFormat = "text"
	// JSONFormat writes one JSON object per entry.
	JSONFormat LogFormat = "json"
)

// Environment variables consulted when the matching flag is left empty.
const (
	EnvLogLevel  = "SEQKIT_LOG_LEVEL"
	EnvLogFormat = "SEQKIT_LOG_FORMAT"
)

// Defaults applied when neither flag nor environment set a value.
const (
	DefaultLogLevel  = logrus.WarnLevel
	DefaultLogFormat = TextFormat
)

// ErrBadLogFormat indicates a log format other than text or json.
var ErrBadLogFormat = errors.New("config: log format must be text or json")

// Config is the resolved CLI configuration shared by all subcommands.
type Config struct {
	LogLevel  logrus.Level
	LogFormat LogFormat
}

// Load resolves the configuration. Each argument is the raw flag value; an
// empty string falls back to the environment, then to the default.
func Load(level, format string) (*Config, error) {
	cfg := &Config{LogLevel: DefaultLogLevel, LogFormat: DefaultLogFormat}

	if level = firstNonEmpty(level, os.Getenv(EnvLogLevel)); level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, errors.Wrap(err, "config: parse log level")
		}
		cfg.LogLevel = lvl
	}

	if format = firstNonEmpty(format, os.Getenv(EnvLogFormat)); format != "" {
		switch f := LogFormat(strings.ToLower(format)); f {
		case TextFormat, JSONFormat:
			cfg.LogFormat = f
		default:
			return nil, errors.Wrapf(ErrBadLogFormat, "got %q", format)
		}
	}

	return cfg, nil
}

// NewLogger returns a logrus logger writing to w with the configured level
// and formatter.
func (c *Config) NewLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(c.LogLevel)
	if c.LogFormat == JSONFormat {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	return logger
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
