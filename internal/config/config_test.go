package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Storage.MaxUploadMB != 50 {
		t.Errorf("default max upload = %d, want 50", cfg.Storage.MaxUploadMB)
	}
	if !cfg.Poster.Enabled {
		t.Error("poster should be enabled by default")
	}
	if got := cfg.MaxUploadBytes(); got != 50<<20 {
		t.Errorf("MaxUploadBytes = %d, want %d", got, 50<<20)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := Config{Logging: LoggingCfg{Level: tt.level}}
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Setenv("BOOKVAULT_TEST_VAR", "resolved")

	tests := []struct {
		in   string
		want string
	}{
		{"${BOOKVAULT_TEST_VAR}", "resolved"},
		{"prefix-${BOOKVAULT_TEST_VAR}-suffix", "prefix-resolved-suffix"},
		{"no vars here", "no vars here"},
		{"${UNSET_VAR_XYZ}", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ResolveEnvVars(tt.in); got != tt.want {
			t.Errorf("ResolveEnvVars(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "# Bookvault configuration") {
		t.Error("config file missing header comment")
	}
	for _, want := range []string{"server:", "storage:", "poster:", "logging:", "max_upload_mb: 50"} {
		if !strings.Contains(content, want) {
			t.Errorf("config file missing %q", want)
		}
	}
}
