package revenue

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

func TestRecordDeposit(t *testing.T) {
	p := &Pool{}
	mgr := makeAddr(0x01)

	d, err := RecordDeposit(p, mgr, 5000, 1700000000)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), d.Seq)
	assert.Equal(t, uint64(5000), d.Amount)
	assert.Equal(t, DepositPending, d.State)
	assert.Equal(t, uint64(5000), p.TotalPending)

	d2, err := RecordDeposit(p, mgr, 2500, 1700000100)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), d2.Seq)
	assert.Equal(t, uint64(7500), p.TotalPending)
}

func TestRecordDeposit_ZeroAmount(t *testing.T) {
	p := &Pool{}
	_, err := RecordDeposit(p, makeAddr(0x01), 0, 0)
	assert.ErrorIs(t, err, ErrZeroDeposit)
	assert.Equal(t, uint64(0), p.NextSeq)
}

func TestApprove(t *testing.T) {
	tests := []struct {
		name     string
		pending  uint64
		feeBps   uint32
		wantFee  uint64
		wantNet  uint64
	}{
		{"three percent", 10000, 300, 300, 9700},
		{"zero fee", 10000, 0, 0, 10000},
		{"full fee", 10000, 10000, 10000, 0},
		{"rounding down", 9999, 1, 0, 9999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Pool{TotalPending: tt.pending}

			ev, err := Approve(p, tt.feeBps, 1700000000)
			require.NoError(t, err)

			assert.Equal(t, tt.pending, ev.Gross)
			assert.Equal(t, tt.wantFee, ev.Fee)
			assert.Equal(t, tt.wantNet, ev.Net)
			assert.Equal(t, uint64(0), p.TotalPending)
			assert.Equal(t, tt.wantNet, p.TotalApproved)
			assert.Equal(t, tt.wantFee, p.FeesCollected)
		})
	}
}

func TestApprove_NothingPending(t *testing.T) {
	p := &Pool{}
	_, err := Approve(p, 300, 0)
	assert.ErrorIs(t, err, ErrNoPendingDistribution)

	// A second approval right after a successful one also fails.
	p.TotalPending = 100
	_, err = Approve(p, 300, 0)
	require.NoError(t, err)
	_, err = Approve(p, 300, 0)
	assert.ErrorIs(t, err, ErrNoPendingDistribution)
}

func TestApprove_FeeRateOutOfRange(t *testing.T) {
	p := &Pool{TotalPending: 100}
	_, err := Approve(p, 10001, 0)
	assert.ErrorIs(t, err, ErrFeeRateOutOfRange)
	assert.Equal(t, uint64(100), p.TotalPending, "failed approval must not mutate state")
}

func TestApprove_Ratchet(t *testing.T) {
	// totalApproved only ever grows across repeated deposit/approve cycles.
	p := &Pool{}
	mgr := makeAddr(0x02)
	var prev uint64

	for i := 0; i < 5; i++ {
		_, err := RecordDeposit(p, mgr, 1000, int64(i))
		require.NoError(t, err)
		_, err = Approve(p, 250, int64(i))
		require.NoError(t, err)

		assert.Greater(t, p.TotalApproved, prev)
		prev = p.TotalApproved
	}
	assert.Equal(t, uint64(4875), p.TotalApproved) // 5 × 975
	assert.Equal(t, uint64(125), p.FeesCollected)
}

func TestRecordPayout(t *testing.T) {
	p := &Pool{TotalApproved: 9700}

	require.NoError(t, RecordPayout(p, 6790))
	assert.Equal(t, uint64(2910), p.Remaining())

	require.NoError(t, RecordPayout(p, 2910))
	assert.Equal(t, uint64(0), p.Remaining())

	err := RecordPayout(p, 1)
	assert.ErrorIs(t, err, ErrPoolOverdrawn)
}

func TestDepositState_String(t *testing.T) {
	assert.Equal(t, "pending", DepositPending.String())
	assert.Equal(t, "approved", DepositApproved.String())
	assert.Equal(t, "unknown(7)", DepositState(7).String())
}
