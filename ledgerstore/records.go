package ledgerstore

import "github.com/sahoo04/FractionalEstate-sub002/identity"

// CorrectionRecord documents a balance adjustment applied during
// reconciliation. The pre- and post-adjustment amounts are both recorded
// so the audit trail stands on its own.
type CorrectionRecord struct {
	Seq       uint64
	Holder    identity.Address
	OldAmount uint64
	NewAmount uint64
	Reason    string
	Timestamp int64 // unix seconds
}
