package registry

import (
	"fmt"

	"github.com/sahoo04/FractionalEstate-sub002/identity"
)

// TransferKind classifies a journal entry.
type TransferKind uint8

const (
	// KindMint is a creation-time or administrative share issuance.
	KindMint TransferKind = iota

	// KindTransfer is a direct holder-to-holder move.
	KindTransfer

	// KindSettlement is a marketplace listing settlement.
	KindSettlement

	// KindCorrection is a reconciliation adjustment. Corrections are
	// ordinary journal entries so that a replayed balance always matches
	// the stored one after reconciliation.
	KindCorrection
)

// String returns the kind name for audit output.
func (k TransferKind) String() string {
	switch k {
	case KindMint:
		return "mint"
	case KindTransfer:
		return "transfer"
	case KindSettlement:
		return "settlement"
	case KindCorrection:
		return "correction"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// TransferRecord is one append-only journal entry of share movement.
// Mints carry the zero address as From; downward corrections carry the zero
// address as To.
type TransferRecord struct {
	Seq       uint64
	Kind      TransferKind
	From      identity.Address
	To        identity.Address
	Amount    uint64
	Timestamp int64 // unix seconds
}

// Replay recomputes a holder's balance from the authoritative transfer
// journal: credits where the holder is the recipient, debits where the
// holder is the source. A debit exceeding the running balance means the
// journal itself is corrupt.
func Replay(holder identity.Address, journal []*TransferRecord) (uint64, error) {
	var balance uint64
	for _, rec := range journal {
		if rec.To == holder {
			balance += rec.Amount
		}
		if rec.From == holder {
			if rec.Amount > balance {
				return 0, fmt.Errorf("%w: journal entry %d debits %d from balance %d",
					ErrShareConservationViolation, rec.Seq, rec.Amount, balance)
			}
			balance -= rec.Amount
		}
	}
	return balance, nil
}
