package market

import "errors"

var (
	// ErrZeroAmount indicates a listing for zero shares.
	ErrZeroAmount = errors.New("market: listing amount must be positive")

	// ErrZeroPrice indicates a listing with a zero price per share.
	ErrZeroPrice = errors.New("market: price per share must be positive")

	// ErrPriceOverflow indicates the total price does not fit in 64 bits.
	ErrPriceOverflow = errors.New("market: total price overflows")

	// ErrListingNotActive indicates the listing already settled or was cancelled.
	ErrListingNotActive = errors.New("market: listing not active")

	// ErrListingNotFound indicates no listing exists with the given id.
	ErrListingNotFound = errors.New("market: listing not found")

	// ErrUnauthorized indicates the caller is not the listing's seller.
	ErrUnauthorized = errors.New("market: caller not authorized")
)
