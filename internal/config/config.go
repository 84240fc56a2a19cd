package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultDBFile is created in the working directory when nothing else is
// configured.
const DefaultDBFile = "notes.db"

// Environment variables consulted by Resolve.
const (
	EnvDB       = "NOTEKEEP_DB"
	EnvEmail    = "NOTEKEEP_EMAIL"
	EnvLicense  = "NOTEKEEP_LICENSE"
	EnvLogLevel = "NOTEKEEP_LOG_LEVEL"
)

// Settings is the fully resolved configuration for one CLI run.
type Settings struct {
	DBPath   string
	Email    string
	License  string
	LogLevel slog.Level
}

// Overrides carries values given on the command line. Empty fields fall
// through to the environment, then the global config, then defaults.
type Overrides struct {
	DBPath   string
	Email    string
	License  string
	LogLevel string
}

// LoadDotEnv loads a .env file from the working directory if present.
// Variables already set in the environment win.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// Resolve merges overrides, environment and global config.
func Resolve(o Overrides) (*Settings, error) {
	global, err := LoadGlobalConfig()
	if err != nil {
		return nil, err
	}

	s := &Settings{
		DBPath:  firstNonEmpty(o.DBPath, os.Getenv(EnvDB), global.DBPath, DefaultDBFile),
		Email:   firstNonEmpty(o.Email, os.Getenv(EnvEmail), global.Email),
		License: firstNonEmpty(o.License, os.Getenv(EnvLicense), global.License),
	}
	s.DBPath = ExpandTilde(s.DBPath)

	level := firstNonEmpty(o.LogLevel, os.Getenv(EnvLogLevel), global.LogLevel, "info")
	s.LogLevel, err = ParseLogLevel(level)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// ParseLogLevel accepts debug, info, warn or error, ignoring case.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
