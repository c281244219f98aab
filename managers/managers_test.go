package managers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahoo04/FractionalEstate-sub002/identity"
)

func makeAddr(seed byte) identity.Address {
	var addr identity.Address
	for i := range addr {
		addr[i] = seed
	}
	return addr
}

func TestAssignRevoke(t *testing.T) {
	var a Assignments
	mgr := makeAddr(0x01)

	assert.False(t, a.IsManager(mgr))

	require.NoError(t, a.Assign(0, mgr))
	assert.True(t, a.IsManager(mgr))

	require.NoError(t, a.Revoke(0))
	assert.False(t, a.IsManager(mgr))
}

func TestAssign_Errors(t *testing.T) {
	var a Assignments
	mgr := makeAddr(0x01)
	require.NoError(t, a.Assign(0, mgr))

	tests := []struct {
		name    string
		slot    int
		manager identity.Address
		wantErr error
	}{
		{"negative slot", -1, makeAddr(0x02), ErrSlotOutOfRange},
		{"slot too high", MaxSlots, makeAddr(0x02), ErrSlotOutOfRange},
		{"zero manager", 1, identity.ZeroAddress, ErrZeroManager},
		{"occupied slot", 0, makeAddr(0x02), ErrSlotOccupied},
		{"duplicate manager", 1, mgr, ErrAlreadyAssigned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, a.Assign(tt.slot, tt.manager), tt.wantErr)
		})
	}
}

func TestRevoke_Errors(t *testing.T) {
	var a Assignments
	assert.ErrorIs(t, a.Revoke(-1), ErrSlotOutOfRange)
	assert.ErrorIs(t, a.Revoke(MaxSlots), ErrSlotOutOfRange)
	assert.ErrorIs(t, a.Revoke(3), ErrSlotVacant)
}

func TestMultipleManagers(t *testing.T) {
	var a Assignments
	m1 := makeAddr(0x01)
	m2 := makeAddr(0x02)

	require.NoError(t, a.Assign(0, m1))
	require.NoError(t, a.Assign(5, m2))

	assert.True(t, a.IsManager(m1))
	assert.True(t, a.IsManager(m2))
	assert.Equal(t, []identity.Address{m1, m2}, a.Active())

	// Revoking one does not disturb the other.
	require.NoError(t, a.Revoke(0))
	assert.False(t, a.IsManager(m1))
	assert.True(t, a.IsManager(m2))
}

func TestIsManager_ZeroAddress(t *testing.T) {
	var a Assignments
	// Vacant slots hold the zero address; it must never count as a manager.
	assert.False(t, a.IsManager(identity.ZeroAddress))
}
