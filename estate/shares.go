package estate

import (
	"context"
	"fmt"
	"time"

	"github.com/sahoo04/FractionalEstate-sub002/identity"
	"github.com/sahoo04/FractionalEstate-sub002/ledgerstore"
	"github.com/sahoo04/FractionalEstate-sub002/registry"
)

// CreateProperty registers a new tokenized property with a fixed total
// supply. Shares are issued separately through Mint.
func (l *Ledger) CreateProperty(ctx context.Context, passphrase string, supply uint64) (registry.PropertyID, error) {
	if err := l.verifyAdmin(passphrase); err != nil {
		return registry.PropertyID{}, err
	}
	if supply == 0 {
		return registry.PropertyID{}, registry.ErrZeroSupply
	}

	id := registry.NewPropertyID()
	state := &registry.PropertyState{
		Supply:    supply,
		CreatedAt: time.Now().Unix(),
	}
	err := l.store.Update(func(tx *ledgerstore.Tx) error {
		return tx.PutProperty(id, state)
	})
	if err != nil {
		return registry.PropertyID{}, err
	}
	return id, nil
}

// Mint issues shares of a property to a holder, bounded by the fixed supply.
func (l *Ledger) Mint(ctx context.Context, passphrase string, prop registry.PropertyID, to identity.Address, amount uint64) error {
	if err := l.verifyAdmin(passphrase); err != nil {
		return err
	}
	if !l.kyc.IsEligible(to) {
		return fmt.Errorf("%w: %s", ErrNotEligible, to)
	}

	return l.store.Update(func(tx *ledgerstore.Tx) error {
		state, err := activeProperty(tx, prop)
		if err != nil {
			return err
		}
		bal, err := tx.Balance(prop, to)
		if err != nil {
			return err
		}
		if err := registry.Mint(state, bal, amount); err != nil {
			return err
		}
		if err := tx.PutProperty(prop, state); err != nil {
			return err
		}
		if err := tx.PutBalance(prop, to, bal); err != nil {
			return err
		}
		return tx.AppendTransfer(prop, &registry.TransferRecord{
			Kind:      registry.KindMint,
			To:        to,
			Amount:    amount,
			Timestamp: time.Now().Unix(),
		})
	})
}

// Transfer moves freely held shares between two holders. Shares committed to
// an active listing cannot move.
func (l *Ledger) Transfer(ctx context.Context, prop registry.PropertyID, from, to identity.Address, amount uint64) error {
	if !l.kyc.IsEligible(to) {
		return fmt.Errorf("%w: %s", ErrNotEligible, to)
	}

	return l.store.Update(func(tx *ledgerstore.Tx) error {
		if _, err := activeProperty(tx, prop); err != nil {
			return err
		}
		fromBal, err := tx.Balance(prop, from)
		if err != nil {
			return err
		}
		// A self-transfer shares one balance record; the net movement is zero
		// but validation and the journal entry still apply.
		toBal := fromBal
		if from != to {
			toBal, err = tx.Balance(prop, to)
			if err != nil {
				return err
			}
		}
		if err := registry.Transfer(fromBal, toBal, amount); err != nil {
			return err
		}
		if err := tx.PutBalance(prop, from, fromBal); err != nil {
			return err
		}
		if err := tx.PutBalance(prop, to, toBal); err != nil {
			return err
		}
		return tx.AppendTransfer(prop, &registry.TransferRecord{
			Kind:      registry.KindTransfer,
			From:      from,
			To:        to,
			Amount:    amount,
			Timestamp: time.Now().Unix(),
		})
	})
}

// BalanceOf returns a holder's total share balance, listed shares included.
func (l *Ledger) BalanceOf(prop registry.PropertyID, holder identity.Address) (uint64, error) {
	var amount uint64
	err := l.store.View(func(tx *ledgerstore.Tx) error {
		if !tx.HasProperty(prop) {
			return fmt.Errorf("%w: %s", ledgerstore.ErrPropertyNotFound, prop)
		}
		bal, err := tx.Balance(prop, holder)
		if err != nil {
			return err
		}
		amount = bal.Amount
		return nil
	})
	return amount, err
}

// TotalSupply returns the number of shares issued so far. Entitlement math
// divides by this figure, so revenue splits over shares that exist, not the
// unissued remainder of the cap. The fixed cap is on Property.
func (l *Ledger) TotalSupply(prop registry.PropertyID) (uint64, error) {
	var supply uint64
	err := l.store.View(func(tx *ledgerstore.Tx) error {
		state, err := tx.Property(prop)
		if err != nil {
			return err
		}
		supply = state.Issued
		return nil
	})
	return supply, err
}

// Property returns a property's full supply state.
func (l *Ledger) Property(prop registry.PropertyID) (*registry.PropertyState, error) {
	var state *registry.PropertyState
	err := l.store.View(func(tx *ledgerstore.Tx) error {
		var err error
		state, err = tx.Property(prop)
		return err
	})
	return state, err
}
