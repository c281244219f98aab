// Package registry tracks fractional share ownership per property: who holds
// how many shares, how many are encumbered by active marketplace listings,
// and how many of the fixed supply have been issued.
//
// The package holds pure state transitions only. Persistence and atomicity
// are provided by the caller, which applies these transitions inside a single
// store transaction.
package registry

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/sahoo04/FractionalEstate-sub002/identity"
)

// PropertyIDSize is the length of a property identifier (SHA256 output).
const PropertyIDSize = 32

// PropertyID uniquely identifies a tokenized property.
type PropertyID [PropertyIDSize]byte

// NewPropertyID generates a fresh property identifier by hashing a random
// UUID. SHA256 keeps identifiers uniform regardless of how the seed is
// produced.
func NewPropertyID() PropertyID {
	id := uuid.New()
	return PropertyID(sha256.Sum256(id[:]))
}

// ParsePropertyID decodes a hex-encoded property identifier.
func ParsePropertyID(s string) (PropertyID, error) {
	var id PropertyID
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("%w: %w", ErrInvalidPropertyID, err)
	}
	if len(b) != PropertyIDSize {
		return id, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidPropertyID, PropertyIDSize, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// String returns the hex form of the property identifier.
func (id PropertyID) String() string {
	return hex.EncodeToString(id[:])
}

// PropertyState holds the per-property supply accounting.
// Supply is fixed at creation and never changes; Issued grows through mints
// up to Supply. Halted marks a property frozen after a detected invariant
// violation, pending reconciliation.
type PropertyState struct {
	Supply    uint64
	Issued    uint64
	Halted    bool
	CreatedAt int64 // unix seconds
}

// Unissued returns the number of shares still available to mint.
func (p *PropertyState) Unissued() uint64 {
	return p.Supply - p.Issued
}

// Balance is a holder's position in one property. Encumbered counts shares
// committed to active marketplace listings; they still belong to the holder
// but cannot be moved outside listing settlement.
type Balance struct {
	Amount     uint64
	Encumbered uint64
}

// Free returns the shares available for transfer or new listings.
func (b *Balance) Free() uint64 {
	return b.Amount - b.Encumbered
}

// Holding pairs a holder address with their balance, for conservation checks
// and registry-wide queries.
type Holding struct {
	Holder  identity.Address
	Balance Balance
}
