// Package ledgerstore persists the share ledger in a bbolt database.
//
// Layout follows the append-friendly keyspaces of the ledger's data model:
// balances and claim records keyed by property‖holder, deposit/transfer/
// payout/correction logs keyed by property‖sequence so an in-order cursor
// scan yields per-property history, and listings keyed by id with a
// property index. Records are gob-encoded.
//
// All reads and writes go through View/Update, so one ledger operation is
// one bbolt transaction: every multi-record mutation commits atomically or
// not at all, and concurrent operations never observe partial state.
package ledgerstore

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/sahoo04/FractionalEstate-sub002/claims"
	"github.com/sahoo04/FractionalEstate-sub002/identity"
	"github.com/sahoo04/FractionalEstate-sub002/managers"
	"github.com/sahoo04/FractionalEstate-sub002/market"
	"github.com/sahoo04/FractionalEstate-sub002/registry"
	"github.com/sahoo04/FractionalEstate-sub002/revenue"
)

var (
	bucketProperties     = []byte("properties")
	bucketBalances       = []byte("balances")
	bucketPools          = []byte("pools")
	bucketDeposits       = []byte("deposits")
	bucketClaims         = []byte("claims")
	bucketListings       = []byte("listings")
	bucketListingsByProp = []byte("listings_by_property")
	bucketManagers       = []byte("managers")
	bucketTransfers      = []byte("transfers")
	bucketPayouts        = []byte("payouts")
	bucketCorrections    = []byte("corrections")
)

// BoltStore wraps a bbolt database holding the full ledger state.
type BoltStore struct {
	db *bbolt.DB
}

// Open opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func Open(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("ledgerstore: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("ledgerstore: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{
			bucketProperties, bucketBalances, bucketPools, bucketDeposits,
			bucketClaims, bucketListings, bucketListingsByProp,
			bucketManagers, bucketTransfers, bucketPayouts, bucketCorrections,
		} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("ledgerstore: create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ledgerstore: create buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// Update executes fn in a single writable transaction. Returning an error
// rolls every staged write back.
func (s *BoltStore) Update(fn func(*Tx) error) error {
	return s.db.Update(func(btx *bbolt.Tx) error {
		return fn(&Tx{btx: btx, writable: true})
	})
}

// View executes fn in a read-only transaction.
func (s *BoltStore) View(fn func(*Tx) error) error {
	return s.db.View(func(btx *bbolt.Tx) error {
		return fn(&Tx{btx: btx})
	})
}

// seqKey encodes a property-scoped sequence as prop ‖ 8-byte big-endian,
// so a prefix cursor walks one property's log in order.
func seqKey(prop registry.PropertyID, seq uint64) []byte {
	k := make([]byte, registry.PropertyIDSize+8)
	copy(k, prop[:])
	binary.BigEndian.PutUint64(k[registry.PropertyIDSize:], seq)
	return k
}

// holderKey encodes a (property, holder) composite key.
func holderKey(prop registry.PropertyID, holder identity.Address) []byte {
	k := make([]byte, 0, registry.PropertyIDSize+identity.AddressSize)
	k = append(k, prop[:]...)
	k = append(k, holder[:]...)
	return k
}

// encodeGob serializes a value using gob encoding.
func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeGob deserializes gob-encoded data into a value.
func decodeGob(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// ---------------------------------------------------------------------------
// Tx — typed accessors over one bbolt transaction.
// ---------------------------------------------------------------------------

// Tx exposes the ledger's record types over a single bbolt transaction.
type Tx struct {
	btx      *bbolt.Tx
	writable bool
}

// Property returns a property's supply state.
func (t *Tx) Property(prop registry.PropertyID) (*registry.PropertyState, error) {
	data := t.btx.Bucket(bucketProperties).Get(prop[:])
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrPropertyNotFound, prop)
	}
	state := &registry.PropertyState{}
	if err := decodeGob(data, state); err != nil {
		return nil, fmt.Errorf("ledgerstore: decode property: %w", err)
	}
	return state, nil
}

// PutProperty stores a property's supply state.
func (t *Tx) PutProperty(prop registry.PropertyID, state *registry.PropertyState) error {
	data, err := encodeGob(state)
	if err != nil {
		return fmt.Errorf("ledgerstore: encode property: %w", err)
	}
	return t.btx.Bucket(bucketProperties).Put(prop[:], data)
}

// HasProperty reports whether the property exists.
func (t *Tx) HasProperty(prop registry.PropertyID) bool {
	return t.btx.Bucket(bucketProperties).Get(prop[:]) != nil
}

// Balance returns a holder's balance. A missing row is a valid zero
// balance, not an error.
func (t *Tx) Balance(prop registry.PropertyID, holder identity.Address) (*registry.Balance, error) {
	data := t.btx.Bucket(bucketBalances).Get(holderKey(prop, holder))
	if data == nil {
		return &registry.Balance{}, nil
	}
	b := &registry.Balance{}
	if err := decodeGob(data, b); err != nil {
		return nil, fmt.Errorf("ledgerstore: decode balance: %w", err)
	}
	return b, nil
}

// PutBalance stores a holder's balance. Zero balances are kept; balance
// rows are never deleted.
func (t *Tx) PutBalance(prop registry.PropertyID, holder identity.Address, b *registry.Balance) error {
	data, err := encodeGob(b)
	if err != nil {
		return fmt.Errorf("ledgerstore: encode balance: %w", err)
	}
	return t.btx.Bucket(bucketBalances).Put(holderKey(prop, holder), data)
}

// Holdings returns every balance row of a property in key order.
func (t *Tx) Holdings(prop registry.PropertyID) ([]registry.Holding, error) {
	var out []registry.Holding
	c := t.btx.Bucket(bucketBalances).Cursor()
	for k, v := c.Seek(prop[:]); k != nil && bytes.HasPrefix(k, prop[:]); k, v = c.Next() {
		var holder identity.Address
		copy(holder[:], k[registry.PropertyIDSize:])
		b := registry.Balance{}
		if err := decodeGob(v, &b); err != nil {
			return nil, fmt.Errorf("ledgerstore: decode balance: %w", err)
		}
		out = append(out, registry.Holding{Holder: holder, Balance: b})
	}
	return out, nil
}

// Pool returns a property's revenue pool, zero-valued if none exists yet.
func (t *Tx) Pool(prop registry.PropertyID) (*revenue.Pool, error) {
	data := t.btx.Bucket(bucketPools).Get(prop[:])
	if data == nil {
		return &revenue.Pool{}, nil
	}
	p := &revenue.Pool{}
	if err := decodeGob(data, p); err != nil {
		return nil, fmt.Errorf("ledgerstore: decode pool: %w", err)
	}
	return p, nil
}

// PutPool stores a property's revenue pool.
func (t *Tx) PutPool(prop registry.PropertyID, p *revenue.Pool) error {
	data, err := encodeGob(p)
	if err != nil {
		return fmt.Errorf("ledgerstore: encode pool: %w", err)
	}
	return t.btx.Bucket(bucketPools).Put(prop[:], data)
}

// AppendDeposit stores a deposit under its pool-assigned sequence.
func (t *Tx) AppendDeposit(prop registry.PropertyID, d *revenue.Deposit) error {
	data, err := encodeGob(d)
	if err != nil {
		return fmt.Errorf("ledgerstore: encode deposit: %w", err)
	}
	return t.btx.Bucket(bucketDeposits).Put(seqKey(prop, d.Seq), data)
}

// Deposits returns a property's deposit log in sequence order.
func (t *Tx) Deposits(prop registry.PropertyID) ([]*revenue.Deposit, error) {
	var out []*revenue.Deposit
	c := t.btx.Bucket(bucketDeposits).Cursor()
	for k, v := c.Seek(prop[:]); k != nil && bytes.HasPrefix(k, prop[:]); k, v = c.Next() {
		d := &revenue.Deposit{}
		if err := decodeGob(v, d); err != nil {
			return nil, fmt.Errorf("ledgerstore: decode deposit: %w", err)
		}
		out = append(out, d)
	}
	return out, nil
}

// ApprovePendingDeposits flips every pending deposit of a property to
// approved, in place. The transition is one-way.
func (t *Tx) ApprovePendingDeposits(prop registry.PropertyID) error {
	b := t.btx.Bucket(bucketDeposits)
	c := b.Cursor()
	for k, v := c.Seek(prop[:]); k != nil && bytes.HasPrefix(k, prop[:]); k, v = c.Next() {
		d := &revenue.Deposit{}
		if err := decodeGob(v, d); err != nil {
			return fmt.Errorf("ledgerstore: decode deposit: %w", err)
		}
		if d.State != revenue.DepositPending {
			continue
		}
		d.State = revenue.DepositApproved
		data, err := encodeGob(d)
		if err != nil {
			return fmt.Errorf("ledgerstore: encode deposit: %w", err)
		}
		if err := b.Put(append([]byte(nil), k...), data); err != nil {
			return fmt.Errorf("ledgerstore: put deposit: %w", err)
		}
	}
	return nil
}

// ClaimRecord returns a holder's claim record, zero-valued if the holder
// never claimed.
func (t *Tx) ClaimRecord(prop registry.PropertyID, holder identity.Address) (*claims.Record, error) {
	data := t.btx.Bucket(bucketClaims).Get(holderKey(prop, holder))
	if data == nil {
		return &claims.Record{}, nil
	}
	r := &claims.Record{}
	if err := decodeGob(data, r); err != nil {
		return nil, fmt.Errorf("ledgerstore: decode claim record: %w", err)
	}
	return r, nil
}

// PutClaimRecord stores a holder's claim record.
func (t *Tx) PutClaimRecord(prop registry.PropertyID, holder identity.Address, r *claims.Record) error {
	data, err := encodeGob(r)
	if err != nil {
		return fmt.Errorf("ledgerstore: encode claim record: %w", err)
	}
	return t.btx.Bucket(bucketClaims).Put(holderKey(prop, holder), data)
}

// Listing returns a listing by id.
func (t *Tx) Listing(id string) (*market.Listing, error) {
	data := t.btx.Bucket(bucketListings).Get([]byte(id))
	if data == nil {
		return nil, fmt.Errorf("%w: %s", market.ErrListingNotFound, id)
	}
	l := &market.Listing{}
	if err := decodeGob(data, l); err != nil {
		return nil, fmt.Errorf("ledgerstore: decode listing: %w", err)
	}
	return l, nil
}

// PutListing stores a listing and maintains the per-property index.
func (t *Tx) PutListing(l *market.Listing) error {
	data, err := encodeGob(l)
	if err != nil {
		return fmt.Errorf("ledgerstore: encode listing: %w", err)
	}
	if err := t.btx.Bucket(bucketListings).Put([]byte(l.ID), data); err != nil {
		return fmt.Errorf("ledgerstore: put listing: %w", err)
	}
	idxKey := append(append([]byte(nil), l.Property[:]...), []byte(l.ID)...)
	return t.btx.Bucket(bucketListingsByProp).Put(idxKey, []byte(l.ID))
}

// ListingsByProperty returns all listings of a property, any status.
func (t *Tx) ListingsByProperty(prop registry.PropertyID) ([]*market.Listing, error) {
	var out []*market.Listing
	c := t.btx.Bucket(bucketListingsByProp).Cursor()
	for k, v := c.Seek(prop[:]); k != nil && bytes.HasPrefix(k, prop[:]); k, v = c.Next() {
		l, err := t.Listing(string(v))
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// Managers returns a property's manager slots, all vacant if never set.
func (t *Tx) Managers(prop registry.PropertyID) (*managers.Assignments, error) {
	data := t.btx.Bucket(bucketManagers).Get(prop[:])
	if data == nil {
		return &managers.Assignments{}, nil
	}
	a := &managers.Assignments{}
	if err := decodeGob(data, a); err != nil {
		return nil, fmt.Errorf("ledgerstore: decode managers: %w", err)
	}
	return a, nil
}

// PutManagers stores a property's manager slots.
func (t *Tx) PutManagers(prop registry.PropertyID, a *managers.Assignments) error {
	data, err := encodeGob(a)
	if err != nil {
		return fmt.Errorf("ledgerstore: encode managers: %w", err)
	}
	return t.btx.Bucket(bucketManagers).Put(prop[:], data)
}

// AppendTransfer appends a journal entry, assigning its sequence.
func (t *Tx) AppendTransfer(prop registry.PropertyID, rec *registry.TransferRecord) error {
	seq, err := t.btx.Bucket(bucketTransfers).NextSequence()
	if err != nil {
		return fmt.Errorf("ledgerstore: transfer sequence: %w", err)
	}
	rec.Seq = seq
	data, err := encodeGob(rec)
	if err != nil {
		return fmt.Errorf("ledgerstore: encode transfer: %w", err)
	}
	return t.btx.Bucket(bucketTransfers).Put(seqKey(prop, seq), data)
}

// Transfers returns a property's transfer journal in order.
func (t *Tx) Transfers(prop registry.PropertyID) ([]*registry.TransferRecord, error) {
	var out []*registry.TransferRecord
	c := t.btx.Bucket(bucketTransfers).Cursor()
	for k, v := c.Seek(prop[:]); k != nil && bytes.HasPrefix(k, prop[:]); k, v = c.Next() {
		rec := &registry.TransferRecord{}
		if err := decodeGob(v, rec); err != nil {
			return nil, fmt.Errorf("ledgerstore: decode transfer: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// AppendPayout appends an approval audit record, assigning its sequence.
func (t *Tx) AppendPayout(prop registry.PropertyID, ev *revenue.PayoutEvent) error {
	seq, err := t.btx.Bucket(bucketPayouts).NextSequence()
	if err != nil {
		return fmt.Errorf("ledgerstore: payout sequence: %w", err)
	}
	data, err := encodeGob(ev)
	if err != nil {
		return fmt.Errorf("ledgerstore: encode payout: %w", err)
	}
	return t.btx.Bucket(bucketPayouts).Put(seqKey(prop, seq), data)
}

// Payouts returns a property's approval audit log in order.
func (t *Tx) Payouts(prop registry.PropertyID) ([]*revenue.PayoutEvent, error) {
	var out []*revenue.PayoutEvent
	c := t.btx.Bucket(bucketPayouts).Cursor()
	for k, v := c.Seek(prop[:]); k != nil && bytes.HasPrefix(k, prop[:]); k, v = c.Next() {
		ev := &revenue.PayoutEvent{}
		if err := decodeGob(v, ev); err != nil {
			return nil, fmt.Errorf("ledgerstore: decode payout: %w", err)
		}
		out = append(out, ev)
	}
	return out, nil
}

// AppendCorrection appends a reconciliation audit record, assigning its
// sequence.
func (t *Tx) AppendCorrection(prop registry.PropertyID, rec *CorrectionRecord) error {
	seq, err := t.btx.Bucket(bucketCorrections).NextSequence()
	if err != nil {
		return fmt.Errorf("ledgerstore: correction sequence: %w", err)
	}
	rec.Seq = seq
	data, err := encodeGob(rec)
	if err != nil {
		return fmt.Errorf("ledgerstore: encode correction: %w", err)
	}
	return t.btx.Bucket(bucketCorrections).Put(seqKey(prop, seq), data)
}

// Corrections returns a property's reconciliation audit log in order.
func (t *Tx) Corrections(prop registry.PropertyID) ([]*CorrectionRecord, error) {
	var out []*CorrectionRecord
	c := t.btx.Bucket(bucketCorrections).Cursor()
	for k, v := c.Seek(prop[:]); k != nil && bytes.HasPrefix(k, prop[:]); k, v = c.Next() {
		rec := &CorrectionRecord{}
		if err := decodeGob(v, rec); err != nil {
			return nil, fmt.Errorf("ledgerstore: decode correction: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}
