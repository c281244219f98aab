// Package revenue implements the per-property revenue account: an append-only
// deposit log gated behind an administrative approval step. Deposits arrive
// as PENDING and become distributable only when an administrator approves the
// accumulated pending amount, at which point a platform fee is deducted and
// the net amount joins the property's approved pool.
package revenue

import (
	"fmt"

	"github.com/sahoo04/FractionalEstate-sub002/identity"
)

// FeeDenominator is the basis-point denominator for platform fees.
// A fee rate of 300 means 3%.
const FeeDenominator = 10000

// DepositState is the approval state of a single deposit.
type DepositState uint8

const (
	// DepositPending means the deposit is recorded but not yet distributable.
	DepositPending DepositState = iota

	// DepositApproved means the deposit has been folded into the approved pool.
	// The transition is one-way.
	DepositApproved
)

// String returns the state name for audit output.
func (s DepositState) String() string {
	switch s {
	case DepositPending:
		return "pending"
	case DepositApproved:
		return "approved"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// Deposit is one revenue deposit made by a delegated manager.
// Deposits are append-only; they are never deleted or reversed.
type Deposit struct {
	Seq       uint64
	Amount    uint64
	Manager   identity.Address
	Timestamp int64 // unix seconds
	State     DepositState
}

// Pool is the per-property revenue accounting. TotalApproved and
// TotalDistributed are monotonically non-decreasing; approved funds are never
// returned to pending.
type Pool struct {
	TotalPending     uint64
	TotalApproved    uint64
	TotalDistributed uint64
	FeesCollected    uint64
	NextSeq          uint64
}

// PayoutEvent records one approval for audit: the gross pending amount
// approved, the platform fee deducted, and the net amount that became
// distributable.
type PayoutEvent struct {
	Gross     uint64
	Fee       uint64
	Net       uint64
	FeeBps    uint32
	Timestamp int64 // unix seconds
}

// Remaining returns the approved funds not yet paid out to holders.
func (p *Pool) Remaining() uint64 {
	return p.TotalApproved - p.TotalDistributed
}

// RecordDeposit appends a pending deposit to the pool and returns the record.
// The caller has already verified the manager's authorization and moved the
// funds into the property's pool account.
func RecordDeposit(p *Pool, manager identity.Address, amount uint64, now int64) (*Deposit, error) {
	if amount == 0 {
		return nil, ErrZeroDeposit
	}
	d := &Deposit{
		Seq:       p.NextSeq,
		Amount:    amount,
		Manager:   manager,
		Timestamp: now,
		State:     DepositPending,
	}
	p.NextSeq++
	p.TotalPending += amount
	return d, nil
}

// Approve moves the entire pending amount into the approved pool, deducting
// the platform fee. The returned event carries the gross, fee, and net
// amounts for the audit log. Approving with nothing pending fails.
func Approve(p *Pool, feeBps uint32, now int64) (*PayoutEvent, error) {
	if feeBps > FeeDenominator {
		return nil, fmt.Errorf("%w: %d bps", ErrFeeRateOutOfRange, feeBps)
	}
	if p.TotalPending == 0 {
		return nil, ErrNoPendingDistribution
	}

	gross := p.TotalPending
	fee := gross * uint64(feeBps) / FeeDenominator
	net := gross - fee

	p.TotalPending = 0
	p.TotalApproved += net
	p.FeesCollected += fee

	return &PayoutEvent{
		Gross:     gross,
		Fee:       fee,
		Net:       net,
		FeeBps:    feeBps,
		Timestamp: now,
	}, nil
}

// RecordPayout accounts an outbound claim payment against the approved pool.
// Paying out more than remains approved means the pool data is corrupt.
func RecordPayout(p *Pool, amount uint64) error {
	if amount > p.Remaining() {
		return fmt.Errorf("%w: payout %d exceeds remaining %d", ErrPoolOverdrawn, amount, p.Remaining())
	}
	p.TotalDistributed += amount
	return nil
}
