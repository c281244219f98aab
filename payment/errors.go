package payment

import "errors"

var (
	// ErrInsufficientFunds indicates the source account cannot cover the transfer.
	ErrInsufficientFunds = errors.New("payment: insufficient funds")

	// ErrTransferDenied indicates the transport refused the transfer.
	ErrTransferDenied = errors.New("payment: transfer denied")

	// ErrZeroTransfer indicates a transfer of zero.
	ErrZeroTransfer = errors.New("payment: transfer amount must be positive")
)
