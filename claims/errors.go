package claims

import "errors"

var (
	// ErrNothingToClaim indicates the holder has no unclaimed entitlement.
	ErrNothingToClaim = errors.New("claims: nothing to claim")

	// ErrClaimOverrun indicates a claim record exceeds the property's
	// approved total. This is a corruption condition.
	ErrClaimOverrun = errors.New("claims: claimed amount exceeds approved total")
)
