package identity

import "errors"

var (
	// ErrInvalidAddress indicates an address string or hash is malformed.
	ErrInvalidAddress = errors.New("identity: invalid address")
)
