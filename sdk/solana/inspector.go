package solana

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/smartcontractkit/deploycheck/sdk"
	sdkerrors "github.com/smartcontractkit/deploycheck/sdk/errors"
	"github.com/smartcontractkit/deploycheck/types"
)

const family = "solana"

// AccountReader is the subset of the Solana RPC client needed to read program state.
// *rpc.Client satisfies it.
type AccountReader interface {
	GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error)
}

var _ sdk.Inspector = (*Inspector)(nil)

// Inspector is an Inspector implementation for Solana chains. Programs are deployed when their
// account is executable, and their owner is the upgrade authority of the program.
type Inspector struct {
	client AccountReader
}

// NewInspector creates a new Inspector for solana chains.
func NewInspector(client AccountReader) *Inspector {
	return &Inspector{client: client}
}

// ReadState reads the state of the program at expected.Address. Proxy, timelock, role and
// remote router expectations have no Solana equivalent and fail with an UnsupportedReadError.
func (s *Inspector) ReadState(ctx context.Context, expected types.ExpectedState) (types.ObservedState, error) {
	observed := types.ObservedState{Contract: expected.Contract, Address: expected.Address}
	if err := checkSupported(expected); err != nil {
		return observed, err
	}

	programID, err := solana.PublicKeyFromBase58(expected.Address)
	if err != nil {
		return observed, fmt.Errorf("unable to parse solana program id %q: %w", expected.Address, err)
	}

	sdk.LoggerFrom(ctx).Debugf("reading %s at %s", expected.Contract, programID)

	program, err := s.getAccount(ctx, programID)
	if errors.Is(err, rpc.ErrNotFound) {
		return observed, nil
	}
	if err != nil {
		return observed, sdkerrors.NewReadError("program account", expected.Address, err)
	}
	if !program.Executable {
		return observed, nil
	}
	observed.Deployed = true

	code := program.Data.GetBinary()
	var authority *solana.PublicKey
	if isUpgradeable(program) {
		programDataID, err := decodeProgramAccount(code)
		if err != nil {
			return observed, sdkerrors.NewReadError("program account", expected.Address, err)
		}

		programData, err := s.getAccount(ctx, programDataID)
		if err != nil {
			return observed, sdkerrors.NewReadError("program data", expected.Address, err)
		}

		authority, code, err = decodeProgramData(programData.Data.GetBinary())
		if err != nil {
			return observed, sdkerrors.NewReadError("program data", expected.Address, err)
		}
	}

	if expected.Bytecode != nil {
		// Solana programs carry no compiler metadata trailer.
		observed.BytecodeHash = Fingerprint(code)
		observed.MetadataFreeBytecodeHash = observed.BytecodeHash
	}
	if expected.Owner != "" && authority != nil {
		observed.Owner = authority.String()
	}

	return observed, nil
}

func (s *Inspector) getAccount(ctx context.Context, account solana.PublicKey) (*rpc.Account, error) {
	res, err := s.client.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{
		Commitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return nil, err
	}
	if res == nil || res.Value == nil {
		return nil, rpc.ErrNotFound
	}

	return res.Value, nil
}

func checkSupported(expected types.ExpectedState) error {
	switch {
	case expected.Proxy != nil:
		return sdkerrors.NewUnsupportedReadError(family, "proxy admin")
	case expected.Timelock != nil:
		return sdkerrors.NewUnsupportedReadError(family, "timelock delay")
	case len(expected.Roles) > 0:
		return sdkerrors.NewUnsupportedReadError(family, "roles")
	case len(expected.RemoteRouters) > 0:
		return sdkerrors.NewUnsupportedReadError(family, "remote routers")
	default:
		return nil
	}
}
