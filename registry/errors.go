package registry

import "errors"

var (
	// ErrInvalidPropertyID indicates a property identifier is malformed.
	ErrInvalidPropertyID = errors.New("registry: invalid property id")

	// ErrZeroSupply indicates a property cannot be created with no shares.
	ErrZeroSupply = errors.New("registry: total supply must be positive")

	// ErrZeroAmount indicates a share operation with a zero amount.
	ErrZeroAmount = errors.New("registry: amount must be positive")

	// ErrSupplyExceeded indicates a mint would exceed the fixed supply cap.
	ErrSupplyExceeded = errors.New("registry: mint exceeds total supply")

	// ErrInsufficientBalance indicates the holder owns fewer shares than required.
	ErrInsufficientBalance = errors.New("registry: insufficient share balance")

	// ErrAlreadyEncumbered indicates the shares are committed to an active listing.
	ErrAlreadyEncumbered = errors.New("registry: shares already encumbered by an active listing")

	// ErrEncumbranceUnderflow indicates a release of more shares than are held.
	ErrEncumbranceUnderflow = errors.New("registry: encumbrance release exceeds held amount")

	// ErrShareConservationViolation indicates shares were created or destroyed.
	ErrShareConservationViolation = errors.New("registry: share conservation violated")
)
