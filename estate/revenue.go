package estate

import (
	"context"
	"fmt"
	"time"

	"github.com/sahoo04/FractionalEstate-sub002/identity"
	"github.com/sahoo04/FractionalEstate-sub002/ledgerstore"
	"github.com/sahoo04/FractionalEstate-sub002/payment"
	"github.com/sahoo04/FractionalEstate-sub002/registry"
	"github.com/sahoo04/FractionalEstate-sub002/revenue"
)

// Deposit records a revenue deposit by a delegated manager and moves the
// funds from the manager's account into the property's pool account. The
// deposit stays pending until an administrator approves it. Deposits from
// anyone outside the property's manager slots are rejected and leave no
// trace.
func (l *Ledger) Deposit(ctx context.Context, prop registry.PropertyID, manager identity.Address, amount uint64) (*revenue.Deposit, error) {
	var dep *revenue.Deposit
	err := l.store.Update(func(tx *ledgerstore.Tx) error {
		if _, err := activeProperty(tx, prop); err != nil {
			return err
		}
		a, err := tx.Managers(prop)
		if err != nil {
			return err
		}
		if !a.IsManager(manager) {
			return fmt.Errorf("%w: %s", ErrUnauthorizedManager, manager)
		}
		pool, err := tx.Pool(prop)
		if err != nil {
			return err
		}
		dep, err = revenue.RecordDeposit(pool, manager, amount, time.Now().Unix())
		if err != nil {
			return err
		}
		if err := tx.AppendDeposit(prop, dep); err != nil {
			return err
		}
		if err := tx.PutPool(prop, pool); err != nil {
			return err
		}
		// Money moves last so a transport failure rolls the record back.
		return l.payments.Transfer(ctx, payment.HolderAccount(manager), payment.PoolAccount(prop), amount)
	})
	if err != nil {
		return nil, err
	}
	return dep, nil
}

// Approve folds the property's entire pending amount into the approved pool,
// deducting the platform fee and moving it to the platform account. The
// returned event carries the gross, fee, and net amounts.
func (l *Ledger) Approve(ctx context.Context, passphrase string, prop registry.PropertyID) (*revenue.PayoutEvent, error) {
	if err := l.verifyAdmin(passphrase); err != nil {
		return nil, err
	}

	var ev *revenue.PayoutEvent
	err := l.store.Update(func(tx *ledgerstore.Tx) error {
		if _, err := activeProperty(tx, prop); err != nil {
			return err
		}
		pool, err := tx.Pool(prop)
		if err != nil {
			return err
		}
		ev, err = revenue.Approve(pool, l.FeeRate(), time.Now().Unix())
		if err != nil {
			return err
		}
		if err := tx.ApprovePendingDeposits(prop); err != nil {
			return err
		}
		if err := tx.AppendPayout(prop, ev); err != nil {
			return err
		}
		if err := tx.PutPool(prop, pool); err != nil {
			return err
		}
		if ev.Fee == 0 {
			return nil
		}
		return l.payments.Transfer(ctx, payment.PoolAccount(prop), payment.PlatformAccount, ev.Fee)
	})
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// SetFeeRate changes the platform fee applied by subsequent approvals.
// Already-approved distributions keep the fee they were charged.
func (l *Ledger) SetFeeRate(passphrase string, bps uint32) error {
	if err := l.verifyAdmin(passphrase); err != nil {
		return err
	}
	if bps > revenue.FeeDenominator {
		return fmt.Errorf("%w: %d bps", revenue.ErrFeeRateOutOfRange, bps)
	}
	l.mu.Lock()
	l.feeBps = bps
	l.mu.Unlock()
	return nil
}

// FeeRate returns the platform fee in basis points.
func (l *Ledger) FeeRate() uint32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.feeBps
}
