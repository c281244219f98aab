package estate

import (
	"context"
	"errors"
	"fmt"

	"github.com/sahoo04/FractionalEstate-sub002/claims"
	"github.com/sahoo04/FractionalEstate-sub002/identity"
	"github.com/sahoo04/FractionalEstate-sub002/ledgerstore"
	"github.com/sahoo04/FractionalEstate-sub002/payment"
	"github.com/sahoo04/FractionalEstate-sub002/registry"
	"github.com/sahoo04/FractionalEstate-sub002/revenue"
)

// ClaimableAmount returns what the holder could withdraw right now:
// their proportional share of all approved revenue minus what they already
// claimed, clamped at zero.
func (l *Ledger) ClaimableAmount(prop registry.PropertyID, holder identity.Address) (uint64, error) {
	var amount uint64
	err := l.store.View(func(tx *ledgerstore.Tx) error {
		state, err := tx.Property(prop)
		if err != nil {
			return err
		}
		bal, err := tx.Balance(prop, holder)
		if err != nil {
			return err
		}
		pool, err := tx.Pool(prop)
		if err != nil {
			return err
		}
		rec, err := tx.ClaimRecord(prop, holder)
		if err != nil {
			return err
		}
		amount = claims.Claimable(pool.TotalApproved, bal.Amount, state.Issued, rec)
		// Entitlement recomputes from the current balance, so shares bought
		// after the previous owner claimed can be entitled to funds already
		// paid out. The pool's unpaid remainder caps what is really there.
		if remaining := pool.Remaining(); amount > remaining {
			amount = remaining
		}
		return nil
	})
	return amount, err
}

// Claim pays the holder their outstanding claimable amount from the
// property's pool account and advances their claim record. Claiming with
// nothing outstanding fails with ErrNothingToClaim.
//
// A claim record found ahead of the approved pool, or a payout that would
// overdraw the pool, means the ledger data is corrupt: the property is
// halted and the claim rejected.
func (l *Ledger) Claim(ctx context.Context, prop registry.PropertyID, holder identity.Address) (uint64, error) {
	if !l.kyc.IsEligible(holder) {
		return 0, fmt.Errorf("%w: %s", ErrNotEligible, holder)
	}

	var amount uint64
	err := l.store.Update(func(tx *ledgerstore.Tx) error {
		state, err := activeProperty(tx, prop)
		if err != nil {
			return err
		}
		bal, err := tx.Balance(prop, holder)
		if err != nil {
			return err
		}
		pool, err := tx.Pool(prop)
		if err != nil {
			return err
		}
		rec, err := tx.ClaimRecord(prop, holder)
		if err != nil {
			return err
		}
		if err := claims.Validate(rec, pool.TotalApproved); err != nil {
			return err
		}
		amount, err = claims.ClaimUpTo(pool.TotalApproved, bal.Amount, state.Issued, pool.Remaining(), rec)
		if err != nil {
			return err
		}
		if err := revenue.RecordPayout(pool, amount); err != nil {
			return err
		}
		if err := tx.PutClaimRecord(prop, holder, rec); err != nil {
			return err
		}
		if err := tx.PutPool(prop, pool); err != nil {
			return err
		}
		return l.payments.Transfer(ctx, payment.PoolAccount(prop), payment.HolderAccount(holder), amount)
	})
	if err != nil {
		if errors.Is(err, claims.ErrClaimOverrun) || errors.Is(err, revenue.ErrPoolOverdrawn) {
			l.haltProperty(prop)
		}
		return 0, err
	}
	return amount, nil
}
