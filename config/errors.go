package config

import "errors"

var (
	// ErrInvalidLogLevel indicates the log level is not recognized.
	ErrInvalidLogLevel = errors.New("config: invalid log level (must be \"debug\", \"info\", \"warn\", or \"error\")")

	// ErrEmptyDataDir indicates the data directory path is empty.
	ErrEmptyDataDir = errors.New("config: data directory must not be empty")

	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config: configuration file not found")

	// ErrInvalidFeeRate indicates the platform fee exceeds 100%.
	ErrInvalidFeeRate = errors.New("config: fee rate exceeds 10000 basis points")

	// ErrMissingAdminCredential indicates no administrative credential is set.
	ErrMissingAdminCredential = errors.New("config: admin credential must be set")

	// ErrInvalidAdminCredential indicates the stored credential is malformed.
	ErrInvalidAdminCredential = errors.New("config: invalid admin credential")
)
