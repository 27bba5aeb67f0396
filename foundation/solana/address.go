// Package solana provides the account and instruction model shared by the
// program encoders, along with the Base58 address conventions of the chain.
package solana

import (
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// ErrInvalidAddress is returned when an address is not valid Base58 text.
var ErrInvalidAddress = errors.New("invalid address")

// DecodeAddress decodes the Base58 text form of an address.
//
// Only the encoding is checked. The decoded length is not, since callers
// are handed back the address text exactly as they supplied it.
func DecodeAddress(address string) ([]byte, error) {
	if address == "" {
		return nil, errors.Wrap(ErrInvalidAddress, "empty address")
	}

	b, err := base58.Decode(address)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidAddress, "%s", err)
	}

	return b, nil
}

// IsAddress reports whether the text is a valid Base58 address.
func IsAddress(address string) bool {
	_, err := DecodeAddress(address)
	return err == nil
}
