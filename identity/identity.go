// Package identity defines the addressing scheme shared by every ledger
// participant: share holders, delegated managers, and marketplace parties.
//
// An Address is the 20-byte HASH160 of a compressed secp256k1 public key,
// the same form used in P2PKH payment destinations. Addresses round-trip
// through base58check strings for external callers.
package identity

import (
	"encoding/hex"
	"fmt"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	bsvhash "github.com/bsv-blockchain/go-sdk/primitives/hash"
	"github.com/bsv-blockchain/go-sdk/script"
)

// AddressSize is the length of an address in bytes (RIPEMD160 output).
const AddressSize = 20

// Address identifies a ledger participant.
type Address [AddressSize]byte

// ZeroAddress is the empty address. It marks vacant manager slots and is
// never a valid participant.
var ZeroAddress Address

// ParseAddress decodes a base58check P2PKH address string.
func ParseAddress(s string) (Address, error) {
	decoded, err := script.NewAddressFromString(s)
	if err != nil {
		return ZeroAddress, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	pkh := []byte(decoded.PublicKeyHash)
	if len(pkh) != AddressSize {
		return ZeroAddress, fmt.Errorf("%w: hash must be %d bytes, got %d",
			ErrInvalidAddress, AddressSize, len(pkh))
	}
	var addr Address
	copy(addr[:], pkh)
	return addr, nil
}

// AddressFromPublicKey computes HASH160(pubkey) = RIPEMD160(SHA256(pubkey))
// over the compressed encoding.
func AddressFromPublicKey(pub *ec.PublicKey) (Address, error) {
	if pub == nil {
		return ZeroAddress, fmt.Errorf("%w: nil public key", ErrInvalidAddress)
	}
	var addr Address
	copy(addr[:], bsvhash.Hash160(pub.Compressed()))
	return addr, nil
}

// String returns the base58check form of the address, or the hex form if
// base58 encoding fails (which cannot happen for a well-formed 20-byte hash).
func (a Address) String() string {
	encoded, err := script.NewAddressFromPublicKeyHash(a[:], true)
	if err != nil {
		return hex.EncodeToString(a[:])
	}
	return encoded.AddressString
}

// IsZero reports whether the address is the zero value.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}
