package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ebichart/internal/common"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "config.yml", `
data_source: https://example.com/coins.json
window:
  width: 1024
  title: Coins
default_coin: ethereum
transition_ms: 250
log_level: debug
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.GetDataSource() != "https://example.com/coins.json" {
		t.Errorf("data source = %q", cfg.GetDataSource())
	}
	if w, h := cfg.GetWindowSize(); w != 1024 || h != common.DefaultWindowHeight {
		t.Errorf("window = %dx%d", w, h)
	}
	if cfg.GetWindowTitle() != "Coins" {
		t.Errorf("title = %q", cfg.GetWindowTitle())
	}
	if cfg.DefaultCoin != "ethereum" {
		t.Errorf("coin = %q", cfg.DefaultCoin)
	}
	// Keys absent from the file keep their defaults.
	if cfg.DefaultMetric != common.DefaultMetric {
		t.Errorf("metric = %q", cfg.DefaultMetric)
	}
	if cfg.GetTransition() != 250*time.Millisecond {
		t.Errorf("transition = %v", cfg.GetTransition())
	}
	if cfg.GetYTicks() != common.DefaultYTicks {
		t.Errorf("y ticks = %d", cfg.GetYTicks())
	}
	if cfg.GetFetchTimeout() != common.DefaultFetchTimeout {
		t.Errorf("timeout = %v", cfg.GetFetchTimeout())
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := writeFile(t, "bad.yml", "window: [1, 2")
	if _, err := LoadConfig(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.GetDataSource() != common.DefaultDataSource {
		t.Errorf("data source = %q", cfg.GetDataSource())
	}
}

func TestApplyEnv(t *testing.T) {
	envFile := writeFile(t, ".env", common.EnvStateFile+"=/tmp/view.json\n")
	t.Setenv(common.EnvDataSource, "other.json")
	t.Setenv(common.EnvLogLevel, "warn")
	os.Unsetenv(common.EnvStateFile)
	defer os.Unsetenv(common.EnvStateFile)

	cfg := Default()
	if err := cfg.ApplyEnv(envFile); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}

	if cfg.DataSource != "other.json" {
		t.Errorf("data source = %q", cfg.DataSource)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
	if cfg.StateFile != "/tmp/view.json" {
		t.Errorf("state file = %q", cfg.StateFile)
	}
}

func TestApplyEnvFiles(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr bool
	}{
		{"missing", filepath.Join(t.TempDir(), ".env"), false},
		{"malformed", writeFile(t, ".env", "BAD-KEY=1\n"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Default().ApplyEnv(tt.file)
			if (err != nil) != tt.wantErr {
				t.Errorf("ApplyEnv(%s) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
		})
	}
}
