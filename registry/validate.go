package registry

import "fmt"

// ValidateConservation checks that the sum of all holder balances equals the
// issued share count and that no holder has more shares encumbered than held.
// A failure means the registry data is corrupt, not that a caller made a
// recoverable mistake.
func ValidateConservation(p *PropertyState, holdings []Holding) error {
	var total uint64
	for _, h := range holdings {
		if h.Balance.Encumbered > h.Balance.Amount {
			return fmt.Errorf("%w: holder %s has %d encumbered of %d held",
				ErrShareConservationViolation, h.Holder, h.Balance.Encumbered, h.Balance.Amount)
		}
		total += h.Balance.Amount
	}
	if total != p.Issued {
		return fmt.Errorf("%w: balances sum to %d, issued %d",
			ErrShareConservationViolation, total, p.Issued)
	}
	if p.Issued > p.Supply {
		return fmt.Errorf("%w: issued %d exceeds supply %d",
			ErrShareConservationViolation, p.Issued, p.Supply)
	}
	return nil
}
