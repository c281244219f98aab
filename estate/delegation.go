package estate

import (
	"context"

	"github.com/sahoo04/FractionalEstate-sub002/identity"
	"github.com/sahoo04/FractionalEstate-sub002/ledgerstore"
	"github.com/sahoo04/FractionalEstate-sub002/registry"
)

// AssignManager places a manager in one of the property's delegation slots.
// The manager may then deposit revenue for the property.
func (l *Ledger) AssignManager(ctx context.Context, passphrase string, prop registry.PropertyID, slot int, manager identity.Address) error {
	if err := l.verifyAdmin(passphrase); err != nil {
		return err
	}
	return l.store.Update(func(tx *ledgerstore.Tx) error {
		if _, err := activeProperty(tx, prop); err != nil {
			return err
		}
		a, err := tx.Managers(prop)
		if err != nil {
			return err
		}
		if err := a.Assign(slot, manager); err != nil {
			return err
		}
		return tx.PutManagers(prop, a)
	})
}

// RevokeManager vacates a delegation slot. Deposits already recorded by the
// revoked manager stand.
func (l *Ledger) RevokeManager(ctx context.Context, passphrase string, prop registry.PropertyID, slot int) error {
	if err := l.verifyAdmin(passphrase); err != nil {
		return err
	}
	return l.store.Update(func(tx *ledgerstore.Tx) error {
		if _, err := activeProperty(tx, prop); err != nil {
			return err
		}
		a, err := tx.Managers(prop)
		if err != nil {
			return err
		}
		if err := a.Revoke(slot); err != nil {
			return err
		}
		return tx.PutManagers(prop, a)
	})
}

// IsManager reports whether an address currently occupies any of the
// property's delegation slots.
func (l *Ledger) IsManager(prop registry.PropertyID, addr identity.Address) (bool, error) {
	var ok bool
	err := l.store.View(func(tx *ledgerstore.Tx) error {
		a, err := tx.Managers(prop)
		if err != nil {
			return err
		}
		ok = a.IsManager(addr)
		return nil
	})
	return ok, err
}
