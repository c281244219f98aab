package estate

import "errors"

var (
	// ErrUnauthorizedManager is returned when a deposit comes from an
	// address not assigned to any of the property's manager slots.
	ErrUnauthorizedManager = errors.New("estate: caller is not a delegated manager")

	// ErrNotEligible is returned when the eligibility predicate refuses an
	// address that would receive shares or claim revenue.
	ErrNotEligible = errors.New("estate: address is not eligible")

	// ErrPropertyHalted is returned for every operation on a property frozen
	// after detected data corruption, until reconciliation repairs it.
	ErrPropertyHalted = errors.New("estate: property halted pending reconciliation")
)
