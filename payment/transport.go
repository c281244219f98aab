// Package payment abstracts the external fungible-asset mover used for
// revenue deposits, claim payouts, and marketplace settlement. The ledger
// treats it as an atomic debit/credit primitive; whether it is backed by a
// stablecoin contract, a bank rail, or an in-process table is invisible to
// the core.
package payment

import (
	"context"

	"github.com/sahoo04/FractionalEstate-sub002/identity"
	"github.com/sahoo04/FractionalEstate-sub002/registry"
)

// AccountID names an account in the payment asset's own ledger.
type AccountID string

// PlatformAccount collects platform fees deducted at approval time.
const PlatformAccount AccountID = "platform"

// HolderAccount returns the payment account of a share holder.
func HolderAccount(addr identity.Address) AccountID {
	return AccountID("holder:" + addr.String())
}

// PoolAccount returns the payment account holding a property's
// approved-but-unclaimed revenue.
func PoolAccount(prop registry.PropertyID) AccountID {
	return AccountID("pool:" + prop.String())
}

// Transport moves the revenue asset between accounts. Transfer either fully
// completes or fully fails; implementations surface ErrInsufficientFunds and
// ErrTransferDenied for the two caller-resolvable failure modes.
type Transport interface {
	Transfer(ctx context.Context, from, to AccountID, amount uint64) error
	Balance(ctx context.Context, account AccountID) (uint64, error)
}
