package sdkerrors

import (
	"fmt"

	"github.com/smartcontractkit/deploycheck/types"
)

// InvalidChainIDError is returned when an RPC endpoint serves a different chain than the one it
// was configured for.
type InvalidChainIDError struct {
	Chain           types.ChainName
	ExpectedChainID uint64
	ReceivedChainID uint64
}

func (e *InvalidChainIDError) Error() string {
	return fmt.Sprintf("invalid chain ID for %s: expected %d, got %d", e.Chain, e.ExpectedChainID, e.ReceivedChainID)
}

func NewInvalidChainIDError(chain types.ChainName, expected, received uint64) *InvalidChainIDError {
	return &InvalidChainIDError{Chain: chain, ExpectedChainID: expected, ReceivedChainID: received}
}

// UnsupportedReadError is returned when an expected property cannot be read on a chain family.
type UnsupportedReadError struct {
	Family   string
	Property string
}

// Error returns the error message.
func (e *UnsupportedReadError) Error() string {
	return fmt.Sprintf("reading %s is not supported on %s chains", e.Property, e.Family)
}

func NewUnsupportedReadError(family, property string) *UnsupportedReadError {
	return &UnsupportedReadError{Family: family, Property: property}
}

// ReadError wraps a failed read of a contract property.
type ReadError struct {
	Property string
	Address  string
	Err      error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s of %s: %v", e.Property, e.Address, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func NewReadError(property, address string, err error) *ReadError {
	return &ReadError{Property: property, Address: address, Err: err}
}
