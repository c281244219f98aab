package ledgerstore

import "errors"

// ErrPropertyNotFound is returned when no property exists under the
// requested identifier.
var ErrPropertyNotFound = errors.New("ledgerstore: property not found")
