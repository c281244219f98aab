package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahoo04/FractionalEstate-sub002/identity"
	"github.com/sahoo04/FractionalEstate-sub002/registry"
)

func TestMemoryTransport_Transfer(t *testing.T) {
	tr := NewMemoryTransport()
	ctx := context.Background()

	tr.Credit("a", 1000)

	require.NoError(t, tr.Transfer(ctx, "a", "b", 400))

	got, err := tr.Balance(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, uint64(600), got)

	got, err = tr.Balance(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, uint64(400), got)
}

func TestMemoryTransport_InsufficientFunds(t *testing.T) {
	tr := NewMemoryTransport()
	ctx := context.Background()
	tr.Credit("a", 100)

	err := tr.Transfer(ctx, "a", "b", 200)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// Neither balance changed.
	got, _ := tr.Balance(ctx, "a")
	assert.Equal(t, uint64(100), got)
	got, _ = tr.Balance(ctx, "b")
	assert.Equal(t, uint64(0), got)
}

func TestMemoryTransport_Denied(t *testing.T) {
	tr := NewMemoryTransport()
	ctx := context.Background()
	tr.Credit("a", 100)
	tr.Deny("b")

	assert.ErrorIs(t, tr.Transfer(ctx, "a", "b", 50), ErrTransferDenied)
	assert.ErrorIs(t, tr.Transfer(ctx, "b", "a", 50), ErrTransferDenied)
}

func TestMemoryTransport_ZeroTransfer(t *testing.T) {
	tr := NewMemoryTransport()
	assert.ErrorIs(t, tr.Transfer(context.Background(), "a", "b", 0), ErrZeroTransfer)
}

func TestMemoryTransport_Conservation(t *testing.T) {
	tr := NewMemoryTransport()
	ctx := context.Background()
	tr.Credit("a", 1000)
	tr.Credit("b", 500)

	require.NoError(t, tr.Transfer(ctx, "a", "b", 250))
	require.NoError(t, tr.Transfer(ctx, "b", "c", 700))

	assert.Equal(t, uint64(1500), tr.TotalSupply())
}

func TestAccountIDs(t *testing.T) {
	var addr identity.Address
	addr[0] = 0xAA
	prop := registry.NewPropertyID()

	assert.NotEqual(t, HolderAccount(addr), PoolAccount(prop))
	assert.NotEqual(t, HolderAccount(addr), PlatformAccount)

	// Account ids are stable for the same inputs.
	assert.Equal(t, HolderAccount(addr), HolderAccount(addr))
	assert.Equal(t, PoolAccount(prop), PoolAccount(prop))
}
