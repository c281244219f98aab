package claims

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntitlement(t *testing.T) {
	tests := []struct {
		name                      string
		approved, balance, supply uint64
		want                      uint64
	}{
		{"sole holder", 9700, 1000, 1000, 9700},
		{"seventy percent", 9700, 700, 1000, 6790},
		{"thirty percent", 9700, 300, 1000, 2910},
		{"floor division", 100, 1, 3, 33},
		{"zero balance", 9700, 0, 1000, 0},
		{"zero approved", 0, 500, 1000, 0},
		{"zero supply", 9700, 500, 0, 0},
		{"large values", math.MaxUint64, math.MaxUint64 / 2, math.MaxUint64, math.MaxUint64 / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Entitlement(tt.approved, tt.balance, tt.supply))
		})
	}
}

func TestEntitlement_Conservation(t *testing.T) {
	// Split a supply arbitrarily: entitlements never sum above the pool.
	approved := uint64(9700)
	supply := uint64(1000)
	splits := [][]uint64{
		{1000},
		{700, 300},
		{333, 333, 334},
		{1, 1, 1, 997},
	}
	for _, balances := range splits {
		var total uint64
		for _, b := range balances {
			total += Entitlement(approved, b, supply)
		}
		assert.LessOrEqual(t, total, approved)
	}
}

func TestClaimable(t *testing.T) {
	r := &Record{}
	assert.Equal(t, uint64(9700), Claimable(9700, 1000, 1000, r))

	r.TotalClaimed = 9700
	assert.Equal(t, uint64(0), Claimable(9700, 1000, 1000, r))

	// Balance dropped after claiming at a higher balance: clamp to zero.
	assert.Equal(t, uint64(0), Claimable(9700, 700, 1000, r))
}

func TestClaim(t *testing.T) {
	r := &Record{}

	amount, err := Claim(9700, 1000, 1000, r)
	require.NoError(t, err)
	assert.Equal(t, uint64(9700), amount)
	assert.Equal(t, uint64(9700), r.TotalClaimed)

	_, err = Claim(9700, 1000, 1000, r)
	assert.ErrorIs(t, err, ErrNothingToClaim)
	assert.Equal(t, uint64(9700), r.TotalClaimed)
}

func TestClaim_Incremental(t *testing.T) {
	// Claim, then more revenue is approved, then claim the delta only.
	r := &Record{}

	amount, err := Claim(9700, 700, 1000, r)
	require.NoError(t, err)
	assert.Equal(t, uint64(6790), amount)

	// Pool grows from 9700 to 19400.
	amount, err = Claim(19400, 700, 1000, r)
	require.NoError(t, err)
	assert.Equal(t, uint64(6790), amount)
	assert.Equal(t, uint64(13580), r.TotalClaimed)
}

func TestClaim_Monotonic(t *testing.T) {
	r := &Record{}
	var prev uint64
	approved := uint64(0)

	for i := 0; i < 10; i++ {
		approved += 1000
		_, err := Claim(approved, 500, 1000, r)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r.TotalClaimed, prev)
		prev = r.TotalClaimed
	}
	assert.Equal(t, uint64(5000), r.TotalClaimed)
}

func TestClaimUpTo_CapsAtPoolRemainder(t *testing.T) {
	// A buyer's recomputed entitlement can exceed what the pool still
	// holds when the seller claimed before selling.
	r := &Record{}

	amount, err := ClaimUpTo(10000, 1000, 1000, 3000, r)
	require.NoError(t, err)
	assert.Equal(t, uint64(3000), amount)
	assert.Equal(t, uint64(3000), r.TotalClaimed)

	_, err = ClaimUpTo(10000, 1000, 1000, 0, r)
	assert.ErrorIs(t, err, ErrNothingToClaim)
	assert.Equal(t, uint64(3000), r.TotalClaimed)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(&Record{TotalClaimed: 9700}, 9700))
	assert.ErrorIs(t, Validate(&Record{TotalClaimed: 9701}, 9700), ErrClaimOverrun)
}
