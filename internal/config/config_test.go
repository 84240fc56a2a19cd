package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// isolate points every config source at empty locations.
func isolate(t *testing.T) {
	t.Helper()
	ResetGlobalConfigCache()
	t.Cleanup(ResetGlobalConfigCache)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{EnvDB, EnvEmail, EnvLicense, EnvLogLevel} {
		t.Setenv(key, "")
	}
}

func TestResolve_Defaults(t *testing.T) {
	isolate(t)

	s, err := Resolve(Overrides{})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if s.DBPath != DefaultDBFile {
		t.Errorf("DBPath = %q, want %q", s.DBPath, DefaultDBFile)
	}
	if s.Email != "" || s.License != "" {
		t.Errorf("Email/License = %q/%q, want empty", s.Email, s.License)
	}
	if s.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want INFO", s.LogLevel)
	}
}

func TestResolve_Precedence(t *testing.T) {
	isolate(t)
	writeGlobalConfig(t, "db_path: /from/config.db\nemail: config@example.com\nlicense: cfg\nlog_level: error\n")

	s, err := Resolve(Overrides{})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if s.DBPath != "/from/config.db" || s.Email != "config@example.com" || s.License != "cfg" {
		t.Errorf("global config not applied: %+v", s)
	}
	if s.LogLevel != slog.LevelError {
		t.Errorf("LogLevel = %v, want ERROR", s.LogLevel)
	}

	t.Setenv(EnvDB, "/from/env.db")
	t.Setenv(EnvEmail, "env@example.com")
	s, err = Resolve(Overrides{})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if s.DBPath != "/from/env.db" || s.Email != "env@example.com" {
		t.Errorf("environment should beat global config: %+v", s)
	}
	if s.License != "cfg" {
		t.Errorf("License = %q, want cfg from global config", s.License)
	}

	s, err = Resolve(Overrides{DBPath: "/from/flag.db", Email: "flag@example.com", LogLevel: "debug"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if s.DBPath != "/from/flag.db" || s.Email != "flag@example.com" {
		t.Errorf("flags should beat environment: %+v", s)
	}
	if s.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want DEBUG", s.LogLevel)
	}
}

func TestResolve_InvalidLogLevel(t *testing.T) {
	isolate(t)

	if _, err := Resolve(Overrides{LogLevel: "loud"}); err == nil {
		t.Error("Resolve() expected error for invalid log level")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLogLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	isolate(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvEmail+"=dotenv@example.com\n"), 0644); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	os.Unsetenv(EnvEmail)
	LoadDotEnv()

	s, err := Resolve(Overrides{})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if s.Email != "dotenv@example.com" {
		t.Errorf("Email = %q, want dotenv@example.com", s.Email)
	}
}
