package payment

import "context"

// MockTransport is a test double for Transport.
// All function fields must be set before the corresponding method is called.
type MockTransport struct {
	TransferFn func(ctx context.Context, from, to AccountID, amount uint64) error
	BalanceFn  func(ctx context.Context, account AccountID) (uint64, error)
}

func (m *MockTransport) Transfer(ctx context.Context, from, to AccountID, amount uint64) error {
	return m.TransferFn(ctx, from, to, amount)
}

func (m *MockTransport) Balance(ctx context.Context, account AccountID) (uint64, error) {
	return m.BalanceFn(ctx, account)
}
