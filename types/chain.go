package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"
	"maps"
	"slices"
)

// ErrEmptyChainName is returned when a chain name is empty.
var ErrEmptyChainName = errors.New("chain name must not be empty")

// ChainName identifies a chain within a deployment environment, e.g. "fuji" or "alfajores".
//
// Chain names are unique within an environment and are used as map keys throughout the checker.
type ChainName string

// String returns the chain name as a string.
func (c ChainName) String() string {
	return string(c)
}

// Validate ensures the chain name is not empty.
func (c ChainName) Validate() error {
	if c == "" {
		return ErrEmptyChainName
	}

	return nil
}

// SortedChainNames returns the keys of a chain keyed map in ascending order.
func SortedChainNames[V any](m map[ChainName]V) []ChainName {
	return slices.Sorted(maps.Keys(m))
}
