package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sahoo04/FractionalEstate-sub002/admin"
)

// testCredential returns an encoded credential for use in valid configs.
func testCredential(t *testing.T) string {
	t.Helper()
	c, err := admin.NewCredential("test passphrase")
	if err != nil {
		t.Fatalf("NewCredential: %v", err)
	}
	return c.Encode()
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DataDir == "" {
		t.Error("DataDir should not be empty")
	}
	if cfg.FeeBps != 300 {
		t.Errorf("FeeBps = %d, want 300", cfg.FeeBps)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.AdminCredential != "" {
		t.Error("AdminCredential must have no default")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	original := Config{
		DataDir:         "/tmp/test-ledger",
		FeeBps:          250,
		AdminCredential: testCredential(t),
		LogLevel:        "debug",
	}

	if err := SaveConfig(path, original); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if loaded != original {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", loaded, original)
	}
}

func TestSaveConfigCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", ConfigFileName)

	if err := SaveConfig(path, DefaultConfig()); err != nil {
		t.Fatalf("SaveConfig should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestLoadConfigNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/ledger.yaml")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig nonexistent: got %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	if err := os.WriteFile(path, []byte("data_dir: [unclosed\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig on invalid YAML: expected error, got nil")
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	content := "log_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	// Unset fields retain defaults.
	if cfg.FeeBps != 300 {
		t.Errorf("FeeBps = %d, want default 300", cfg.FeeBps)
	}
}

func TestValidateConfig(t *testing.T) {
	valid := func(t *testing.T) Config {
		cfg := DefaultConfig()
		cfg.AdminCredential = testCredential(t)
		return cfg
	}

	if err := ValidateConfig(valid(t)); err != nil {
		t.Errorf("ValidateConfig on valid config = %v, want nil", err)
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:    "empty_datadir",
			modify:  func(c *Config) { c.DataDir = "" },
			wantErr: ErrEmptyDataDir,
		},
		{
			name:    "fee_over_100_percent",
			modify:  func(c *Config) { c.FeeBps = 10001 },
			wantErr: ErrInvalidFeeRate,
		},
		{
			name:    "missing_credential",
			modify:  func(c *Config) { c.AdminCredential = "" },
			wantErr: ErrMissingAdminCredential,
		},
		{
			name:    "malformed_credential",
			modify:  func(c *Config) { c.AdminCredential = "zz" },
			wantErr: ErrInvalidAdminCredential,
		},
		{
			name:    "bad_loglevel",
			modify:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: ErrInvalidLogLevel,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid(t)
			tc.modify(&cfg)
			err := ValidateConfig(cfg)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("ValidateConfig: got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateConfig_LogLevelCaseInsensitive(t *testing.T) {
	for _, level := range []string{"INFO", "Debug", "WARN", "Error"} {
		t.Run(level, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.AdminCredential = testCredential(t)
			cfg.LogLevel = level
			if err := ValidateConfig(cfg); err != nil {
				t.Errorf("ValidateConfig with LogLevel %q: %v", level, err)
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	got := ConfigPath("/home/user/.estateledger")
	want := filepath.Join("/home/user/.estateledger", ConfigFileName)
	if got != want {
		t.Errorf("ConfigPath = %q, want %q", got, want)
	}
}
