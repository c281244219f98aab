package revenue

import "errors"

var (
	// ErrZeroDeposit indicates a deposit with a zero amount.
	ErrZeroDeposit = errors.New("revenue: deposit amount must be positive")

	// ErrNoPendingDistribution indicates an approval with nothing pending.
	ErrNoPendingDistribution = errors.New("revenue: no pending distribution to approve")

	// ErrFeeRateOutOfRange indicates a fee rate above 100%.
	ErrFeeRateOutOfRange = errors.New("revenue: fee rate exceeds 10000 basis points")

	// ErrPoolOverdrawn indicates a payout larger than the approved pool holds.
	// This is a corruption condition, not a caller mistake.
	ErrPoolOverdrawn = errors.New("revenue: payout exceeds approved pool")
)
