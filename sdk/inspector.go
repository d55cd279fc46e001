package sdk

import (
	"context"

	"github.com/smartcontractkit/deploycheck/types"
)

// Inspector reads the on-chain state of governed contracts on a single chain.
type Inspector interface {
	// ReadState reads the current state of the contract described by expected. Only the fields
	// needed by the checks expected declares are read: a contract with no Timelock expectation
	// never has its delay read, for example.
	//
	// A contract without code at the address is not an error: the returned state has Deployed
	// set to false and nothing else populated.
	ReadState(ctx context.Context, expected types.ExpectedState) (types.ObservedState, error)
}
