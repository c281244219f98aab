package estate

import (
	"github.com/sahoo04/FractionalEstate-sub002/ledgerstore"
	"github.com/sahoo04/FractionalEstate-sub002/market"
	"github.com/sahoo04/FractionalEstate-sub002/registry"
	"github.com/sahoo04/FractionalEstate-sub002/revenue"
)

// Deposits returns a property's deposit log in order.
func (l *Ledger) Deposits(prop registry.PropertyID) ([]*revenue.Deposit, error) {
	var out []*revenue.Deposit
	err := l.store.View(func(tx *ledgerstore.Tx) error {
		var err error
		out, err = tx.Deposits(prop)
		return err
	})
	return out, err
}

// Payouts returns a property's approval audit log in order.
func (l *Ledger) Payouts(prop registry.PropertyID) ([]*revenue.PayoutEvent, error) {
	var out []*revenue.PayoutEvent
	err := l.store.View(func(tx *ledgerstore.Tx) error {
		var err error
		out, err = tx.Payouts(prop)
		return err
	})
	return out, err
}

// Corrections returns a property's reconciliation audit log in order.
func (l *Ledger) Corrections(prop registry.PropertyID) ([]*ledgerstore.CorrectionRecord, error) {
	var out []*ledgerstore.CorrectionRecord
	err := l.store.View(func(tx *ledgerstore.Tx) error {
		var err error
		out, err = tx.Corrections(prop)
		return err
	})
	return out, err
}

// Transfers returns a property's transfer journal in order.
func (l *Ledger) Transfers(prop registry.PropertyID) ([]*registry.TransferRecord, error) {
	var out []*registry.TransferRecord
	err := l.store.View(func(tx *ledgerstore.Tx) error {
		var err error
		out, err = tx.Transfers(prop)
		return err
	})
	return out, err
}

// Listings returns all of a property's listings, any status.
func (l *Ledger) Listings(prop registry.PropertyID) ([]*market.Listing, error) {
	var out []*market.Listing
	err := l.store.View(func(tx *ledgerstore.Tx) error {
		var err error
		out, err = tx.ListingsByProperty(prop)
		return err
	})
	return out, err
}

// Listing returns one listing by id.
func (l *Ledger) Listing(id string) (*market.Listing, error) {
	var out *market.Listing
	err := l.store.View(func(tx *ledgerstore.Tx) error {
		var err error
		out, err = tx.Listing(id)
		return err
	})
	return out, err
}

// Pool returns a property's revenue accounting.
func (l *Ledger) Pool(prop registry.PropertyID) (*revenue.Pool, error) {
	var out *revenue.Pool
	err := l.store.View(func(tx *ledgerstore.Tx) error {
		var err error
		out, err = tx.Pool(prop)
		return err
	})
	return out, err
}

// Holdings returns every balance row of a property.
func (l *Ledger) Holdings(prop registry.PropertyID) ([]registry.Holding, error) {
	var out []registry.Holding
	err := l.store.View(func(tx *ledgerstore.Tx) error {
		var err error
		out, err = tx.Holdings(prop)
		return err
	})
	return out, err
}
