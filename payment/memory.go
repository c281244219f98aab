package payment

import (
	"context"
	"fmt"
	"sync"
)

// MemoryTransport is an in-process Transport keeping asset balances in a map.
// It backs tests and single-node deployments; production systems substitute
// a real asset mover behind the same interface.
type MemoryTransport struct {
	mu       sync.Mutex
	balances map[AccountID]uint64
	denied   map[AccountID]bool
}

// Compile-time interface check.
var _ Transport = (*MemoryTransport)(nil)

// NewMemoryTransport creates an empty in-memory transport.
func NewMemoryTransport() *MemoryTransport {
	return &MemoryTransport{
		balances: make(map[AccountID]uint64),
		denied:   make(map[AccountID]bool),
	}
}

// Credit adds funds to an account, simulating an external inflow.
func (t *MemoryTransport) Credit(account AccountID, amount uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.balances[account] += amount
}

// Deny marks an account so that any transfer touching it fails with
// ErrTransferDenied, simulating a frozen or sanctioned account.
func (t *MemoryTransport) Deny(account AccountID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.denied[account] = true
}

// Transfer moves amount between accounts. Both balances update or neither.
func (t *MemoryTransport) Transfer(_ context.Context, from, to AccountID, amount uint64) error {
	if amount == 0 {
		return ErrZeroTransfer
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.denied[from] || t.denied[to] {
		return fmt.Errorf("%w: %s -> %s", ErrTransferDenied, from, to)
	}
	if t.balances[from] < amount {
		return fmt.Errorf("%w: account %s has %d, needs %d", ErrInsufficientFunds, from, t.balances[from], amount)
	}
	t.balances[from] -= amount
	t.balances[to] += amount
	return nil
}

// Balance returns the current balance of an account.
func (t *MemoryTransport) Balance(_ context.Context, account AccountID) (uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.balances[account], nil
}

// TotalSupply returns the sum of all balances, for conservation checks in
// tests.
func (t *MemoryTransport) TotalSupply() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	var total uint64
	for _, b := range t.balances {
		total += b
	}
	return total
}
