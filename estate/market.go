package estate

import (
	"context"
	"fmt"
	"time"

	"github.com/sahoo04/FractionalEstate-sub002/identity"
	"github.com/sahoo04/FractionalEstate-sub002/ledgerstore"
	"github.com/sahoo04/FractionalEstate-sub002/market"
	"github.com/sahoo04/FractionalEstate-sub002/payment"
	"github.com/sahoo04/FractionalEstate-sub002/registry"
)

// CreateListing offers part of the seller's holding for sale, committing the
// shares to the listing. Committed shares cannot be transferred or listed
// again until the listing settles or is cancelled.
func (l *Ledger) CreateListing(ctx context.Context, prop registry.PropertyID, seller identity.Address, amount, pricePerShare uint64) (string, error) {
	var id string
	err := l.store.Update(func(tx *ledgerstore.Tx) error {
		if _, err := activeProperty(tx, prop); err != nil {
			return err
		}
		bal, err := tx.Balance(prop, seller)
		if err != nil {
			return err
		}
		if err := registry.Encumber(bal, amount); err != nil {
			return err
		}
		listing, err := market.NewListing(prop, seller, amount, pricePerShare, time.Now().Unix())
		if err != nil {
			return err
		}
		if err := tx.PutBalance(prop, seller, bal); err != nil {
			return err
		}
		if err := tx.PutListing(listing); err != nil {
			return err
		}
		id = listing.ID
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Purchase settles an active listing: the buyer pays the seller the full
// price through the payment transport and the listed shares move to the
// buyer. The first buyer wins; a second purchase of the same listing fails
// with ErrListingNotActive.
func (l *Ledger) Purchase(ctx context.Context, listingID string, buyer identity.Address) error {
	if !l.kyc.IsEligible(buyer) {
		return fmt.Errorf("%w: %s", ErrNotEligible, buyer)
	}

	return l.store.Update(func(tx *ledgerstore.Tx) error {
		listing, err := tx.Listing(listingID)
		if err != nil {
			return err
		}
		if _, err := activeProperty(tx, listing.Property); err != nil {
			return err
		}
		if err := listing.MarkSold(buyer, time.Now().Unix()); err != nil {
			return err
		}
		sellerBal, err := tx.Balance(listing.Property, listing.Seller)
		if err != nil {
			return err
		}
		// Buying one's own listing releases the encumbrance and pays nobody;
		// both sides of the settlement share one balance record.
		buyerBal := sellerBal
		if buyer != listing.Seller {
			buyerBal, err = tx.Balance(listing.Property, buyer)
			if err != nil {
				return err
			}
		}
		if err := registry.Settle(sellerBal, buyerBal, listing.Amount); err != nil {
			return err
		}
		if err := tx.PutBalance(listing.Property, listing.Seller, sellerBal); err != nil {
			return err
		}
		if err := tx.PutBalance(listing.Property, buyer, buyerBal); err != nil {
			return err
		}
		if err := tx.PutListing(listing); err != nil {
			return err
		}
		if err := tx.AppendTransfer(listing.Property, &registry.TransferRecord{
			Kind:      registry.KindSettlement,
			From:      listing.Seller,
			To:        buyer,
			Amount:    listing.Amount,
			Timestamp: time.Now().Unix(),
		}); err != nil {
			return err
		}
		if buyer == listing.Seller {
			return nil
		}
		return l.payments.Transfer(ctx, payment.HolderAccount(buyer), payment.HolderAccount(listing.Seller), listing.TotalPrice())
	})
}

// CancelListing withdraws an active listing and releases the committed
// shares back to the seller. Only the seller may cancel.
func (l *Ledger) CancelListing(ctx context.Context, listingID string, caller identity.Address) error {
	return l.store.Update(func(tx *ledgerstore.Tx) error {
		listing, err := tx.Listing(listingID)
		if err != nil {
			return err
		}
		if _, err := activeProperty(tx, listing.Property); err != nil {
			return err
		}
		if err := listing.Cancel(caller, time.Now().Unix()); err != nil {
			return err
		}
		bal, err := tx.Balance(listing.Property, listing.Seller)
		if err != nil {
			return err
		}
		if err := registry.Release(bal, listing.Amount); err != nil {
			return err
		}
		if err := tx.PutBalance(listing.Property, listing.Seller, bal); err != nil {
			return err
		}
		return tx.PutListing(listing)
	})
}
