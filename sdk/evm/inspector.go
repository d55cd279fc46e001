package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/deploycheck/sdk"
	sdkerrors "github.com/smartcontractkit/deploycheck/sdk/errors"
	"github.com/smartcontractkit/deploycheck/types"
)

var _ sdk.Inspector = (*Inspector)(nil)

// Inspector is an Inspector implementation for EVM chains, reading ownership, proxy, timelock,
// role and router state of governed contracts.
type Inspector struct {
	client  ContractReader
	domains map[types.ChainName]uint32
}

// InspectorOption configures an Inspector.
type InspectorOption func(*Inspector)

// WithDomains sets the Hyperlane domain id of every chain a router may be enrolled with.
func WithDomains(domains map[types.ChainName]uint32) InspectorOption {
	return func(i *Inspector) {
		i.domains = domains
	}
}

// NewInspector creates a new Inspector for evm chains.
func NewInspector(client ContractReader, opts ...InspectorOption) *Inspector {
	i := &Inspector{client: client, domains: map[types.ChainName]uint32{}}
	for _, opt := range opts {
		opt(i)
	}

	return i
}

// VerifyChainID checks that the client is connected to the chain with the given id.
func (e *Inspector) VerifyChainID(ctx context.Context, chain types.ChainName, want uint64) error {
	got, err := e.client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain ID of %s: %w", chain, err)
	}
	if !got.IsUint64() || got.Uint64() != want {
		return sdkerrors.NewInvalidChainIDError(chain, want, got.Uint64())
	}

	return nil
}

// ReadState reads the state of the contract at expected.Address.
func (e *Inspector) ReadState(ctx context.Context, expected types.ExpectedState) (types.ObservedState, error) {
	observed := types.ObservedState{Contract: expected.Contract, Address: expected.Address}
	if !common.IsHexAddress(expected.Address) {
		return observed, fmt.Errorf("invalid address for %s: %q", expected.Contract, expected.Address)
	}
	address := common.HexToAddress(expected.Address)

	lggr := sdk.LoggerFrom(ctx)
	lggr.Debugf("reading %s at %s", expected.Contract, address.Hex())

	code, err := e.client.CodeAt(ctx, address, nil)
	if err != nil {
		return observed, sdkerrors.NewReadError("code", expected.Address, err)
	}
	if len(code) == 0 {
		return observed, nil
	}
	observed.Deployed = true

	if expected.Bytecode != nil {
		observed.BytecodeHash = Fingerprint(code)
		observed.MetadataFreeBytecodeHash = MetadataFreeFingerprint(code)
	}

	if expected.Owner != "" {
		owner, err := e.readOwner(ctx, address)
		if err != nil {
			return observed, sdkerrors.NewReadError("owner", expected.Address, err)
		}
		observed.Owner = owner.Hex()
	}

	if expected.Proxy != nil {
		word, err := e.client.StorageAt(ctx, address, AdminSlot, nil)
		if err != nil {
			return observed, sdkerrors.NewReadError("proxy admin", expected.Address, err)
		}
		observed.ProxyAdmin = slotToAddress(word).Hex()
	}

	if expected.Timelock != nil {
		delay, err := e.readMinDelay(ctx, address)
		if err != nil {
			return observed, sdkerrors.NewReadError("timelock delay", expected.Address, err)
		}
		observed.TimelockDelay = delay
	}

	for _, assignment := range expected.Roles {
		member, err := e.readHasRole(ctx, address, assignment.Role, assignment.Account)
		if err != nil {
			return observed, sdkerrors.NewReadError(fmt.Sprintf("role %s", assignment.Role), expected.Address, err)
		}
		observed.Roles = append(observed.Roles, types.RoleMembership{
			Role:    assignment.Role,
			Account: assignment.Account,
			Member:  member,
		})
	}

	if len(expected.RemoteRouters) > 0 {
		observed.RemoteRouters = make(map[types.ChainName]string, len(expected.RemoteRouters))
		for _, remote := range types.SortedChainNames(expected.RemoteRouters) {
			router, err := e.readRouter(ctx, address, remote)
			if err != nil {
				return observed, sdkerrors.NewReadError(fmt.Sprintf("router for %s", remote), expected.Address, err)
			}
			observed.RemoteRouters[remote] = router
		}
	}

	return observed, nil
}

func (e *Inspector) readOwner(ctx context.Context, address common.Address) (common.Address, error) {
	out, err := e.call(ctx, address, methodOwner)
	if err != nil {
		return common.Address{}, err
	}

	owner, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("unexpected owner type %T", out[0])
	}

	return owner, nil
}

func (e *Inspector) readMinDelay(ctx context.Context, address common.Address) (uint64, error) {
	out, err := e.call(ctx, address, methodGetMinDelay)
	if err != nil {
		return 0, err
	}

	delay, ok := out[0].(*big.Int)
	if !ok {
		return 0, fmt.Errorf("unexpected delay type %T", out[0])
	}
	if !delay.IsUint64() {
		return 0, fmt.Errorf("delay %s overflows uint64", delay)
	}

	return delay.Uint64(), nil
}

func (e *Inspector) readHasRole(ctx context.Context, address common.Address, role, account string) (bool, error) {
	if !common.IsHexAddress(account) {
		return false, fmt.Errorf("invalid account %q", account)
	}

	out, err := e.call(ctx, address, methodHasRole, [32]byte(RoleID(role)), common.HexToAddress(account))
	if err != nil {
		return false, err
	}

	member, ok := out[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected hasRole type %T", out[0])
	}

	return member, nil
}

// readRouter returns the router enrolled for remote, or "" if none is.
func (e *Inspector) readRouter(ctx context.Context, address common.Address, remote types.ChainName) (string, error) {
	domain, ok := e.domains[remote]
	if !ok {
		return "", fmt.Errorf("no domain id known for chain %s", remote)
	}

	out, err := e.call(ctx, address, methodRouters, domain)
	if err != nil {
		return "", err
	}

	router, ok := out[0].([32]byte)
	if !ok {
		return "", fmt.Errorf("unexpected router type %T", out[0])
	}
	if router == ([32]byte{}) {
		return "", nil
	}

	return types.Bytes32ToAddress(router), nil
}

func (e *Inspector) call(ctx context.Context, address common.Address, method string, args ...any) ([]any, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	res, err := e.client.CallContract(ctx, ethereum.CallMsg{To: &address, Data: data}, nil)
	if err != nil {
		return nil, err
	}

	out, err := contractABI.Unpack(method, res)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty result from %s", method)
	}

	return out, nil
}
