// Package config holds the system-level settings of the share ledger:
// where the database lives, the platform fee rate applied at approval time,
// and the stored administrative credential.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the configuration file name inside the data directory.
const ConfigFileName = "ledger.yaml"

// Config is the system configuration.
type Config struct {
	// DataDir is the directory holding the ledger database.
	DataDir string `yaml:"data_dir"`

	// FeeBps is the platform fee in basis points, deducted from each
	// approved distribution (300 = 3%).
	FeeBps uint32 `yaml:"fee_bps"`

	// AdminCredential is the encoded Argon2id credential of the
	// administrative principal (see the admin package).
	AdminCredential string `yaml:"admin_credential"`

	// LogLevel is consumed by embedding daemons; the library itself does
	// not log.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a configuration with sane defaults.
// AdminCredential has no default; deployments must set one.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DataDir:  filepath.Join(home, ".estateledger"),
		FeeBps:   300,
		LogLevel: "info",
	}
}

// ConfigPath returns the path of the config file inside dataDir.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, ConfigFileName)
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes the configuration as YAML, creating the directory if
// needed.
func SaveConfig(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
