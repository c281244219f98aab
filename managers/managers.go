// Package managers tracks which delegated operators may deposit revenue for
// a property. Each property has a small fixed number of manager slots; a
// vacant slot holds the zero address.
package managers

import (
	"fmt"

	"github.com/sahoo04/FractionalEstate-sub002/identity"
)

// MaxSlots is the number of manager slots per property. Properties rarely
// have more than one or two operators (a rental manager and a backup), so a
// small fixed bound keeps the assignment state compact.
const MaxSlots = 8

// Assignments holds the manager slots for one property.
type Assignments struct {
	Slots [MaxSlots]identity.Address
}

// Assign places a manager in the given slot. The slot must be vacant and the
// manager must not already occupy another slot.
func (a *Assignments) Assign(slot int, manager identity.Address) error {
	if slot < 0 || slot >= MaxSlots {
		return fmt.Errorf("%w: slot %d, max %d", ErrSlotOutOfRange, slot, MaxSlots-1)
	}
	if manager.IsZero() {
		return ErrZeroManager
	}
	if !a.Slots[slot].IsZero() {
		return fmt.Errorf("%w: slot %d held by %s", ErrSlotOccupied, slot, a.Slots[slot])
	}
	if a.IsManager(manager) {
		return fmt.Errorf("%w: %s", ErrAlreadyAssigned, manager)
	}
	a.Slots[slot] = manager
	return nil
}

// Revoke clears the given slot.
func (a *Assignments) Revoke(slot int) error {
	if slot < 0 || slot >= MaxSlots {
		return fmt.Errorf("%w: slot %d, max %d", ErrSlotOutOfRange, slot, MaxSlots-1)
	}
	if a.Slots[slot].IsZero() {
		return fmt.Errorf("%w: slot %d", ErrSlotVacant, slot)
	}
	a.Slots[slot] = identity.ZeroAddress
	return nil
}

// IsManager reports whether the address holds any slot.
func (a *Assignments) IsManager(addr identity.Address) bool {
	if addr.IsZero() {
		return false
	}
	for _, s := range a.Slots {
		if s == addr {
			return true
		}
	}
	return false
}

// Active returns the occupied slots in slot order.
func (a *Assignments) Active() []identity.Address {
	out := make([]identity.Address, 0, MaxSlots)
	for _, s := range a.Slots {
		if !s.IsZero() {
			out = append(out, s)
		}
	}
	return out
}
