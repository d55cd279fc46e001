package deploycheck

import (
	"errors"
	"fmt"

	"github.com/smartcontractkit/deploycheck/types"
)

// ErrMalformedExpectedConfig is matched by every MalformedExpectedConfigError.
var ErrMalformedExpectedConfig = errors.New("malformed expected config")

// MalformedExpectedConfigError is returned when the expected state lacks a value required by a
// check that is about to run. It is a configuration authoring defect and aborts the check of the
// chain it was found on.
type MalformedExpectedConfigError struct {
	Chain    types.ChainName
	Contract string
	Field    string
}

// NewMalformedExpectedConfigError creates a new MalformedExpectedConfigError.
func NewMalformedExpectedConfigError(chain types.ChainName, contract, field string) *MalformedExpectedConfigError {
	return &MalformedExpectedConfigError{Chain: chain, Contract: contract, Field: field}
}

func (e *MalformedExpectedConfigError) Error() string {
	if e.Contract == "" {
		return fmt.Sprintf("%s: chain %q: missing %s", ErrMalformedExpectedConfig, e.Chain, e.Field)
	}

	return fmt.Sprintf("%s: chain %q contract %q: missing %s", ErrMalformedExpectedConfig, e.Chain, e.Contract, e.Field)
}

// Is allows matching against ErrMalformedExpectedConfig with errors.Is.
func (e *MalformedExpectedConfigError) Is(target error) bool {
	return target == ErrMalformedExpectedConfig
}

// MissingObservedStateError is returned when no observed snapshot was provided for an expected
// contract. Observed state must be fully materialized before checking.
type MissingObservedStateError struct {
	Chain    types.ChainName
	Contract string
}

// NewMissingObservedStateError creates a new MissingObservedStateError.
func NewMissingObservedStateError(chain types.ChainName, contract string) *MissingObservedStateError {
	return &MissingObservedStateError{Chain: chain, Contract: contract}
}

func (e *MissingObservedStateError) Error() string {
	return fmt.Sprintf("missing observed state for contract %q on chain %q", e.Contract, e.Chain)
}
