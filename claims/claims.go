// Package claims computes each holder's proportional, unclaimed share of a
// property's approved revenue and tracks how much has already been paid out.
//
// Entitlement is recomputed from the holder's current balance on every call:
//
//	claimable = floor(totalApproved × balance / totalSupply) − totalClaimed
//
// clamped at zero. Selling shares therefore transfers un-claimed future
// entitlement to the buyer from the moment of settlement; a holder who wants
// to keep entitlement to already-approved revenue should claim before
// selling. Over-distribution is impossible regardless: claims draw on the
// property's pool account, which only ever holds the approved-but-unpaid
// balance.
package claims

import (
	"fmt"
	"math/bits"
)

// Record tracks the cumulative amount a holder has claimed from one
// property. TotalClaimed is monotonically non-decreasing and the record is
// never deleted.
type Record struct {
	TotalClaimed uint64
}

// Entitlement returns floor(approved × balance / supply), the holder's gross
// proportional share of the approved pool. The 128-bit intermediate keeps the
// product exact for any uint64 inputs.
func Entitlement(approved, balance, supply uint64) uint64 {
	if supply == 0 || balance == 0 || approved == 0 {
		return 0
	}
	if balance >= supply {
		// Conservation guarantees balance ≤ supply; equality means the
		// holder owns everything.
		return approved
	}
	hi, lo := bits.Mul64(approved, balance)
	q, _ := bits.Div64(hi, lo, supply)
	return q
}

// Claimable returns the amount the holder may withdraw right now.
// A balance that dropped below a prior claim level yields zero, never a
// negative value.
func Claimable(approved, balance, supply uint64, r *Record) uint64 {
	entitled := Entitlement(approved, balance, supply)
	if entitled <= r.TotalClaimed {
		return 0
	}
	return entitled - r.TotalClaimed
}

// Claim computes the claimable amount and advances the record by it.
// Fails with ErrNothingToClaim when the holder has nothing outstanding;
// the record is unchanged on error.
func Claim(approved, balance, supply uint64, r *Record) (uint64, error) {
	return ClaimUpTo(approved, balance, supply, ^uint64(0), r)
}

// ClaimUpTo is Claim with the payout capped at cap. Entitlement recomputes
// from the current balance, so shares bought after the previous owner
// claimed can be entitled to funds already paid out; callers pass the pool's
// unpaid remainder so a claim never promises money that is not there.
func ClaimUpTo(approved, balance, supply, cap uint64, r *Record) (uint64, error) {
	amount := Claimable(approved, balance, supply, r)
	if amount > cap {
		amount = cap
	}
	if amount == 0 {
		return 0, ErrNothingToClaim
	}
	r.TotalClaimed += amount
	return amount, nil
}

// Validate checks a record against the approved pool total. A holder cannot
// have claimed more than was ever approved for the whole property; seeing
// that means the claim data is corrupt.
func Validate(r *Record, totalApproved uint64) error {
	if r.TotalClaimed > totalApproved {
		return fmt.Errorf("%w: claimed %d, approved %d", ErrClaimOverrun, r.TotalClaimed, totalApproved)
	}
	return nil
}
