package estate

import (
	"context"
	"time"

	"github.com/sahoo04/FractionalEstate-sub002/identity"
	"github.com/sahoo04/FractionalEstate-sub002/ledgerstore"
	"github.com/sahoo04/FractionalEstate-sub002/registry"
)

// Reconcile recomputes a holder's balance from the authoritative transfer
// journal and, if the stored balance disagrees, replaces it and appends a
// correction to the audit log. When the property's conservation invariants
// hold after the adjustment, a halt set by earlier corruption detection is
// cleared.
//
// The returned record is nil when the stored balance already matched the
// journal.
func (l *Ledger) Reconcile(ctx context.Context, passphrase string, prop registry.PropertyID, holder identity.Address) (*ledgerstore.CorrectionRecord, error) {
	if err := l.verifyAdmin(passphrase); err != nil {
		return nil, err
	}

	var correction *ledgerstore.CorrectionRecord
	err := l.store.Update(func(tx *ledgerstore.Tx) error {
		state, err := tx.Property(prop)
		if err != nil {
			return err
		}
		journal, err := tx.Transfers(prop)
		if err != nil {
			return err
		}
		want, err := registry.Replay(holder, journal)
		if err != nil {
			return err
		}
		bal, err := tx.Balance(prop, holder)
		if err != nil {
			return err
		}

		// The journal is the authority; only the balance row is repaired.
		// A KindCorrection journal entry is reserved for deliberate
		// adjustments away from the journal, not for restoring it.
		if bal.Amount != want {
			correction = &ledgerstore.CorrectionRecord{
				Holder:    holder,
				OldAmount: bal.Amount,
				NewAmount: want,
				Reason:    "transfer journal replay",
				Timestamp: time.Now().Unix(),
			}
			bal.Amount = want
			if bal.Encumbered > bal.Amount {
				bal.Encumbered = bal.Amount
			}
			if err := tx.AppendCorrection(prop, correction); err != nil {
				return err
			}
			if err := tx.PutBalance(prop, holder, bal); err != nil {
				return err
			}
		}

		if !state.Halted {
			return nil
		}
		holdings, err := tx.Holdings(prop)
		if err != nil {
			return err
		}
		if err := registry.ValidateConservation(state, holdings); err != nil {
			return nil // still broken, stay halted
		}
		state.Halted = false
		return tx.PutProperty(prop, state)
	})
	if err != nil {
		return nil, err
	}
	return correction, nil
}
