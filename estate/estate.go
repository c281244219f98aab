// Package estate is the shared business logic layer of the share and
// revenue ledger. CLI commands, service handlers, and embedding daemons all
// call Ledger methods; every mutating operation runs inside a single store
// transaction, so an operation either fully applies or leaves no trace.
package estate

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/sahoo04/FractionalEstate-sub002/admin"
	"github.com/sahoo04/FractionalEstate-sub002/config"
	"github.com/sahoo04/FractionalEstate-sub002/eligibility"
	"github.com/sahoo04/FractionalEstate-sub002/ledgerstore"
	"github.com/sahoo04/FractionalEstate-sub002/payment"
	"github.com/sahoo04/FractionalEstate-sub002/registry"
	"github.com/sahoo04/FractionalEstate-sub002/revenue"
)

// DBFileName is the ledger database file inside the data directory.
const DBFileName = "ledger.db"

// Ledger binds the persistent share registry to the payment transport, the
// eligibility predicate, and the administrative credential.
type Ledger struct {
	store    *ledgerstore.BoltStore
	payments payment.Transport
	kyc      eligibility.Checker
	cred     *admin.Credential

	mu     sync.RWMutex // guards feeBps
	feeBps uint32
}

// New assembles a Ledger from its parts. The store is closed by Close.
func New(store *ledgerstore.BoltStore, payments payment.Transport, kyc eligibility.Checker, cred *admin.Credential, feeBps uint32) (*Ledger, error) {
	if feeBps > revenue.FeeDenominator {
		return nil, fmt.Errorf("%w: %d bps", revenue.ErrFeeRateOutOfRange, feeBps)
	}
	return &Ledger{
		store:    store,
		payments: payments,
		kyc:      kyc,
		cred:     cred,
		feeBps:   feeBps,
	}, nil
}

// Open builds a Ledger from a validated configuration, opening the database
// under the configured data directory.
func Open(cfg config.Config, payments payment.Transport, kyc eligibility.Checker) (*Ledger, error) {
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("estate: %w", err)
	}
	cred, err := admin.ParseCredential(cfg.AdminCredential)
	if err != nil {
		return nil, fmt.Errorf("estate: parse admin credential: %w", err)
	}
	store, err := ledgerstore.Open(filepath.Join(cfg.DataDir, DBFileName))
	if err != nil {
		return nil, err
	}
	l, err := New(store, payments, kyc, cred, cfg.FeeBps)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return l, nil
}

// Close closes the underlying store.
func (l *Ledger) Close() error { return l.store.Close() }

// verifyAdmin checks the administrator passphrase.
func (l *Ledger) verifyAdmin(passphrase string) error {
	if l.cred == nil || !l.cred.Verify(passphrase) {
		return admin.ErrUnauthorized
	}
	return nil
}

// activeProperty loads a property and rejects halted ones. Mutating
// operations go through this; reconciliation reads the state directly.
func activeProperty(tx *ledgerstore.Tx, prop registry.PropertyID) (*registry.PropertyState, error) {
	state, err := tx.Property(prop)
	if err != nil {
		return nil, err
	}
	if state.Halted {
		return nil, fmt.Errorf("%w: %s", ErrPropertyHalted, prop)
	}
	return state, nil
}

// haltProperty freezes a property after detected data corruption. Runs in
// its own transaction because the detecting operation has already rolled
// back.
func (l *Ledger) haltProperty(prop registry.PropertyID) {
	_ = l.store.Update(func(tx *ledgerstore.Tx) error {
		state, err := tx.Property(prop)
		if err != nil {
			return err
		}
		state.Halted = true
		return tx.PutProperty(prop, state)
	})
}
