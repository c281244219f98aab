// Package eligibility supplies the KYC predicate consulted before a holder
// may receive shares or claim revenue. How eligibility is established is an
// external concern; the ledger only asks the yes/no question.
package eligibility

import (
	"sync"

	"github.com/sahoo04/FractionalEstate-sub002/identity"
)

// Checker answers whether an address may hold and claim shares.
type Checker interface {
	IsEligible(addr identity.Address) bool
}

// AllowAll approves every address. Useful for tests and deployments without
// a KYC requirement.
type AllowAll struct{}

// Compile-time interface check.
var _ Checker = AllowAll{}

// IsEligible always returns true.
func (AllowAll) IsEligible(identity.Address) bool { return true }

// Allowlist approves only explicitly added addresses.
type Allowlist struct {
	mu      sync.RWMutex
	allowed map[identity.Address]bool
}

var _ Checker = (*Allowlist)(nil)

// NewAllowlist creates an empty allowlist.
func NewAllowlist() *Allowlist {
	return &Allowlist{allowed: make(map[identity.Address]bool)}
}

// Add marks an address eligible.
func (a *Allowlist) Add(addr identity.Address) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.allowed[addr] = true
}

// Remove withdraws an address's eligibility. Shares already held are
// unaffected; the address simply cannot receive more or claim.
func (a *Allowlist) Remove(addr identity.Address) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.allowed, addr)
}

// IsEligible reports whether the address was added and not removed.
func (a *Allowlist) IsEligible(addr identity.Address) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.allowed[addr]
}
