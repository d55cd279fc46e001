package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// SameAddress reports whether two address strings refer to the same account.
//
// Hex encoded addresses (0x prefixed) are compared case-insensitively, since EIP-55 checksum
// casing carries no identity. Other encodings, such as base58 Solana public keys, are compared
// exactly.
func SameAddress(a, b string) bool {
	if has0xPrefix(a) && has0xPrefix(b) {
		return strings.EqualFold(a, b)
	}

	return a == b
}

// IsHexAddress reports whether s is a 20 byte hex encoded EVM address.
func IsHexAddress(s string) bool {
	return common.IsHexAddress(s)
}

// Bytes32ToAddress renders a 32 byte word as an address string. Words holding a left padded 20
// byte EVM address are rendered as a checksummed EVM address, anything else as 0x prefixed hex.
func Bytes32ToAddress(word [32]byte) string {
	for _, b := range word[:common.HashLength-common.AddressLength] {
		if b != 0 {
			return common.Hash(word).Hex()
		}
	}

	return common.BytesToAddress(word[common.HashLength-common.AddressLength:]).Hex()
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
