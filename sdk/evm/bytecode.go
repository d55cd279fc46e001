package evm

import (
	"bytes"

	"github.com/ethereum/go-ethereum/crypto"
)

// metadataMarker is the start of the CBOR map solc appends to runtime code: a2 (map of two
// entries) 64 "ipfs".
var metadataMarker = []byte{0xa2, 0x64, 0x69, 0x70, 0x66, 0x73}

// StripMetadata removes the trailing Solidity metadata from runtime bytecode. Code without a
// metadata trailer is returned unchanged.
func StripMetadata(code []byte) []byte {
	idx := bytes.LastIndex(code, metadataMarker)
	if idx < 0 {
		return code
	}

	return code[:idx]
}

// Fingerprint returns the keccak256 hash of code as 0x-prefixed hex.
func Fingerprint(code []byte) string {
	return crypto.Keccak256Hash(code).Hex()
}

// MetadataFreeFingerprint returns the fingerprint of code with the metadata trailer removed.
func MetadataFreeFingerprint(code []byte) string {
	return Fingerprint(StripMetadata(code))
}
