package config

import (
	"fmt"
	"strings"

	"github.com/sahoo04/FractionalEstate-sub002/admin"
	"github.com/sahoo04/FractionalEstate-sub002/revenue"
)

// validLogLevels lists the accepted log level strings.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidateConfig checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func ValidateConfig(cfg Config) error {
	if cfg.DataDir == "" {
		return ErrEmptyDataDir
	}

	if cfg.FeeBps > revenue.FeeDenominator {
		return fmt.Errorf("%w: %d bps", ErrInvalidFeeRate, cfg.FeeBps)
	}

	if cfg.AdminCredential == "" {
		return ErrMissingAdminCredential
	}
	if _, err := admin.ParseCredential(cfg.AdminCredential); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdminCredential, err)
	}

	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return ErrInvalidLogLevel
	}

	return nil
}
