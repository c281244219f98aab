package admin

import "errors"

var (
	// ErrEmptyPassphrase indicates a credential cannot be derived from an
	// empty passphrase.
	ErrEmptyPassphrase = errors.New("admin: passphrase must not be empty")

	// ErrInvalidCredential indicates the stored credential is malformed.
	ErrInvalidCredential = errors.New("admin: invalid credential encoding")

	// ErrUnauthorized indicates the caller failed the administrative check.
	ErrUnauthorized = errors.New("admin: unauthorized")
)
