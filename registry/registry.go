package registry

import "fmt"

// Mint issues amount shares to a holder's balance, bounded by the property's
// fixed supply. Both the property state and the balance are updated, or
// neither on error.
func Mint(p *PropertyState, b *Balance, amount uint64) error {
	if amount == 0 {
		return ErrZeroAmount
	}
	if amount > p.Unissued() {
		return fmt.Errorf("%w: %d requested, %d unissued", ErrSupplyExceeded, amount, p.Unissued())
	}
	p.Issued += amount
	b.Amount += amount
	return nil
}

// Transfer moves amount shares between two balances. Shares encumbered by an
// active listing cannot move; settlement of listed shares goes through Settle.
func Transfer(from, to *Balance, amount uint64) error {
	if amount == 0 {
		return ErrZeroAmount
	}
	if from.Amount < amount {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientBalance, from.Amount, amount)
	}
	if from.Free() < amount {
		return fmt.Errorf("%w: %d free of %d held", ErrAlreadyEncumbered, from.Free(), from.Amount)
	}
	from.Amount -= amount
	to.Amount += amount
	return nil
}

// Encumber commits amount of a holder's shares to a marketplace listing.
// A holder with enough total shares but too many already listed fails with
// ErrAlreadyEncumbered rather than ErrInsufficientBalance.
func Encumber(b *Balance, amount uint64) error {
	if amount == 0 {
		return ErrZeroAmount
	}
	if b.Amount < amount {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientBalance, b.Amount, amount)
	}
	if b.Free() < amount {
		return fmt.Errorf("%w: %d free of %d held", ErrAlreadyEncumbered, b.Free(), b.Amount)
	}
	b.Encumbered += amount
	return nil
}

// Release returns amount encumbered shares to the holder's free balance,
// after a listing is cancelled.
func Release(b *Balance, amount uint64) error {
	if amount > b.Encumbered {
		return fmt.Errorf("%w: %d encumbered, %d released", ErrEncumbranceUnderflow, b.Encumbered, amount)
	}
	b.Encumbered -= amount
	return nil
}

// Settle moves amount encumbered shares from seller to buyer during listing
// settlement. The seller must have at least amount shares under encumbrance.
func Settle(from, to *Balance, amount uint64) error {
	if amount == 0 {
		return ErrZeroAmount
	}
	if from.Encumbered < amount {
		return fmt.Errorf("%w: %d encumbered, %d settled", ErrEncumbranceUnderflow, from.Encumbered, amount)
	}
	if from.Amount < amount {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientBalance, from.Amount, amount)
	}
	from.Encumbered -= amount
	from.Amount -= amount
	to.Amount += amount
	return nil
}
