package identity

import (
	"testing"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressFromPublicKey_RoundTrip(t *testing.T) {
	priv, err := ec.NewPrivateKey()
	require.NoError(t, err)

	addr, err := AddressFromPublicKey(priv.PubKey())
	require.NoError(t, err)
	assert.False(t, addr.IsZero())

	parsed, err := ParseAddress(addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr, parsed)
}

func TestAddressFromPublicKey_Nil(t *testing.T) {
	_, err := AddressFromPublicKey(nil)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestParseAddress_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"garbage", "not-an-address"},
		{"bad checksum", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAddress(tt.in)
			assert.ErrorIs(t, err, ErrInvalidAddress)
		})
	}
}

func TestAddress_Deterministic(t *testing.T) {
	priv, err := ec.NewPrivateKey()
	require.NoError(t, err)

	a, err := AddressFromPublicKey(priv.PubKey())
	require.NoError(t, err)
	b, err := AddressFromPublicKey(priv.PubKey())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestZeroAddress(t *testing.T) {
	assert.True(t, ZeroAddress.IsZero())

	var addr Address
	addr[0] = 1
	assert.False(t, addr.IsZero())
}
