package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pdrpinto/waterjug/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write %s: %v", path, err)
	}

	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	want := &config.Config{
		Profile:   "water-jug",
		Format:    "table",
		Heuristic: "min-distance",
		LogLevel:  "info",
		Server: config.ServerConfig{
			Host:           "127.0.0.1",
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:3000"},
			MaxSessions:    64,
			SessionTTL:     config.Duration{Duration: 5 * time.Minute},
			MaxCapacity:    10000,
			ReadTimeout:    config.Duration{Duration: 5 * time.Second},
		},
	}
	if diff := cmp.Diff(want, config.Default()); diff != "" {
		t.Errorf("Default() mismatch (-want +got):\n%s", diff)
	}
	if err := config.Default().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_YAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "jugsolver.yaml", `
profile: fuel-blending
format: json
server:
  port: 9090
  read_timeout: 2s
  session_ttl: 30s
  max_capacity: 500
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	want := config.Default()
	want.Profile = "fuel-blending"
	want.Format = "json"
	want.Server.Port = 9090
	want.Server.ReadTimeout = config.Duration{Duration: 2 * time.Second}
	want.Server.SessionTTL = config.Duration{Duration: 30 * time.Second}
	want.Server.MaxCapacity = 500
	want.LoadPath = path
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_TOML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "jugsolver.toml", `
profile = "space-calibration"
heuristic = "unit"
log_level = "debug"

[server]
host = "0.0.0.0"
allowed_origins = ["https://example.com"]
max_sessions = 4
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	want := config.Default()
	want.Profile = "space-calibration"
	want.Heuristic = "unit"
	want.LogLevel = "debug"
	want.Server.Host = "0.0.0.0"
	want.Server.AllowedOrigins = []string{"https://example.com"}
	want.Server.MaxSessions = 4
	want.LoadPath = path
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.Server.Address(); got != "0.0.0.0:8080" {
		t.Errorf("Address() = %q", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{name: "bad yaml", file: "c.yaml", content: "profile: [", wantErr: "failed to parse config file"},
		{name: "bad toml", file: "c.toml", content: "profile = ", wantErr: "failed to parse config file"},
		{name: "unknown profile", file: "c.yaml", content: "profile: oil-rig", wantErr: "unsupported profile"},
		{name: "unknown format", file: "c.yaml", content: "format: xml", wantErr: "unsupported format"},
		{name: "bad duration", file: "c.yaml", content: "server:\n  read_timeout: soon", wantErr: "invalid duration"},
		{name: "bad port", file: "c.yaml", content: "server:\n  port: 70000", wantErr: "out of range"},
		{name: "negative max capacity", file: "c.yaml", content: "server:\n  max_capacity: -1", wantErr: "max_capacity cannot be negative"},
		{name: "negative session ttl", file: "c.yaml", content: "server:\n  session_ttl: -1m", wantErr: "session_ttl cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Load() error = %v", err)
	}
}
