// Package market implements the peer-to-peer share marketplace: fixed-price
// listings that move through a small state machine. A listing is born ACTIVE
// and terminates exactly once, as SOLD on purchase or CANCELLED on seller
// withdrawal. The listed shares stay with the seller while the listing is
// ACTIVE but are encumbered in the share registry, so they cannot be listed
// twice or transferred out from under a buyer.
package market

import (
	"fmt"
	"math/bits"

	"github.com/google/uuid"

	"github.com/sahoo04/FractionalEstate-sub002/identity"
	"github.com/sahoo04/FractionalEstate-sub002/registry"
)

// Status is the lifecycle state of a listing.
type Status uint8

const (
	// StatusActive means the listing is open for purchase.
	StatusActive Status = iota

	// StatusSold is terminal: the listing settled to a buyer.
	StatusSold

	// StatusCancelled is terminal: the seller withdrew the listing.
	StatusCancelled
)

// String returns the status name for audit output.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusSold:
		return "sold"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// Listing is one fixed-price offer to sell shares of a property.
type Listing struct {
	ID            string
	Property      registry.PropertyID
	Seller        identity.Address
	Amount        uint64
	PricePerShare uint64
	Status        Status
	Buyer         identity.Address // set when sold
	CreatedAt     int64            // unix seconds
	ClosedAt      int64            // unix seconds, zero while active
}

// NewListing creates an ACTIVE listing with a fresh id. The caller is
// responsible for encumbering the seller's shares in the same transaction.
func NewListing(prop registry.PropertyID, seller identity.Address, amount, pricePerShare uint64, now int64) (*Listing, error) {
	if amount == 0 {
		return nil, ErrZeroAmount
	}
	if pricePerShare == 0 {
		return nil, ErrZeroPrice
	}
	if _, overflow := totalPrice(amount, pricePerShare); overflow {
		return nil, fmt.Errorf("%w: %d × %d", ErrPriceOverflow, amount, pricePerShare)
	}
	return &Listing{
		ID:            uuid.NewString(),
		Property:      prop,
		Seller:        seller,
		Amount:        amount,
		PricePerShare: pricePerShare,
		Status:        StatusActive,
		CreatedAt:     now,
	}, nil
}

// TotalPrice returns amount × pricePerShare. Overflow is rejected at listing
// creation, so this cannot overflow for a stored listing.
func (l *Listing) TotalPrice() uint64 {
	total, _ := totalPrice(l.Amount, l.PricePerShare)
	return total
}

// MarkSold transitions ACTIVE → SOLD. Any other starting state fails with
// ErrListingNotActive, which is also what the loser of two concurrent
// purchases observes.
func (l *Listing) MarkSold(buyer identity.Address, now int64) error {
	if l.Status != StatusActive {
		return fmt.Errorf("%w: listing %s is %s", ErrListingNotActive, l.ID, l.Status)
	}
	l.Status = StatusSold
	l.Buyer = buyer
	l.ClosedAt = now
	return nil
}

// Cancel transitions ACTIVE → CANCELLED. Only the original seller may cancel.
func (l *Listing) Cancel(caller identity.Address, now int64) error {
	if l.Status != StatusActive {
		return fmt.Errorf("%w: listing %s is %s", ErrListingNotActive, l.ID, l.Status)
	}
	if caller != l.Seller {
		return fmt.Errorf("%w: only the seller may cancel listing %s", ErrUnauthorized, l.ID)
	}
	l.Status = StatusCancelled
	l.ClosedAt = now
	return nil
}

func totalPrice(amount, pricePerShare uint64) (uint64, bool) {
	hi, lo := bits.Mul64(amount, pricePerShare)
	return lo, hi != 0
}
