package config

import (
	"fmt"
	"slices"

	"github.com/gagliardetto/solana-go"
	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/smartcontractkit/deploycheck"
	"github.com/smartcontractkit/deploycheck/chainsmetadata"
	"github.com/smartcontractkit/deploycheck/types"
)

// Assembly is the expected state of every chain of an environment.
type Assembly struct {
	Environment string
	// Chains lists every chain of the environment config, sorted.
	Chains []types.ChainName
	// Expected holds the contracts expected on every chain that assembled cleanly, in config
	// order, followed by the router.
	Expected map[types.ChainName][]types.ExpectedState
	// Errors holds the chains whose expected state could not be assembled.
	Errors map[types.ChainName]error
}

// Assemble resolves owners and router enrollments into per-chain expected state. Chains missing
// from registry are reported in Assembly.Errors.
func (c *EnvConfig) Assemble(registry *chainsmetadata.Registry) *Assembly {
	asm := &Assembly{
		Environment: c.Environment,
		Expected:    make(map[types.ChainName][]types.ExpectedState),
		Errors:      make(map[types.ChainName]error),
	}

	routerChains := c.routerChains()
	chains := make(map[types.ChainName]struct{}, len(c.Chains)+len(routerChains))
	for chain := range c.Chains {
		chains[chain] = struct{}{}
	}
	for _, chain := range routerChains {
		chains[chain] = struct{}{}
	}
	asm.Chains = types.SortedChainNames(chains)

	for _, chain := range asm.Chains {
		metadata, ok := registry.Get(chain)
		if !ok {
			asm.Errors[chain] = chainsmetadata.NewUnknownChainError(chain)
			continue
		}

		expected := make([]types.ExpectedState, 0, len(c.Chains[chain].Contracts)+1)
		var err error
		for _, contract := range c.Chains[chain].Contracts {
			var state types.ExpectedState
			if state, err = c.expectedContract(chain, contract); err != nil {
				break
			}
			expected = append(expected, state)
		}
		if err != nil {
			asm.Errors[chain] = err
			continue
		}

		if slices.Contains(routerChains, chain) {
			router, err := c.expectedRouter(registry, metadata, routerChains)
			if err != nil {
				asm.Errors[chain] = err
				continue
			}
			expected = append(expected, router)
		}

		asm.Expected[chain] = expected
	}

	return asm
}

// ownerFor resolves the owner of a contract: contract, then chain, then environment.
func (c *EnvConfig) ownerFor(chain types.ChainName, contractOwner string) string {
	if contractOwner != "" {
		return contractOwner
	}
	if owner := c.Chains[chain].Owner; owner != "" {
		return owner
	}

	return c.Owner
}

// expectedContract builds the expected state of a configured contract. An Ownable contract with
// no owner at any level is a malformed config.
func (c *EnvConfig) expectedContract(chain types.ChainName, contract ContractConfig) (types.ExpectedState, error) {
	state := types.ExpectedState{
		Contract:      contract.Name,
		Address:       contract.Address,
		Bytecode:      contract.Bytecode,
		Proxy:         contract.Proxy,
		Roles:         slices.Clone(contract.Roles),
		RemoteRouters: contract.RemoteRouters,
	}
	if contract.ownable() {
		state.Owner = c.ownerFor(chain, contract.Owner)
		if state.Owner == "" {
			return types.ExpectedState{}, deploycheck.NewMalformedExpectedConfigError(chain, contract.Name, "owner")
		}
	}
	if contract.Timelock != nil {
		state.Timelock = &types.TimelockExpectation{}
		if contract.Timelock.MinDelay != nil {
			delay, ok := contract.Timelock.MinDelay.WholeSeconds()
			if !ok {
				return types.ExpectedState{}, deploycheck.NewMalformedExpectedConfigError(chain, contract.Name, "timelock.minDelay")
			}
			state.Timelock.MinDelay = &delay
		}
	}

	return state, nil
}

// routerChains returns the router chains that are not skipped, sorted.
func (c *EnvConfig) routerChains() []types.ChainName {
	if c.Routers == nil {
		return nil
	}

	var chains []types.ChainName
	for _, chain := range types.SortedChainNames(c.Routers.Addresses) {
		if !slices.Contains(c.Routers.ChainsToSkip, chain) {
			chains = append(chains, chain)
		}
	}

	return chains
}

// expectedRouter builds the expected state of the router on a chain. EVM routers are expected to
// enroll the router of every other chain; routers on other families are only checked for
// deployment and ownership.
func (c *EnvConfig) expectedRouter(
	registry *chainsmetadata.Registry, local chainsmetadata.Metadata, routerChains []types.ChainName,
) (types.ExpectedState, error) {
	state := types.ExpectedState{
		Contract: c.Routers.Name,
		Address:  c.Routers.Addresses[local.Name],
		Bytecode: c.Routers.Bytecode,
		Owner:    c.ownerFor(local.Name, ""),
	}
	if state.Owner == "" {
		return types.ExpectedState{}, deploycheck.NewMalformedExpectedConfigError(local.Name, c.Routers.Name, "owner")
	}
	if !local.IsEVM() {
		return state, nil
	}

	state.RemoteRouters = make(map[types.ChainName]string, len(routerChains))
	for _, remote := range routerChains {
		if remote == local.Name {
			continue
		}

		metadata, ok := registry.Get(remote)
		if !ok {
			return types.ExpectedState{}, fmt.Errorf("router enrolled with %w", chainsmetadata.NewUnknownChainError(remote))
		}

		address, err := routerBinding(metadata, c.Routers.Addresses[remote])
		if err != nil {
			return types.ExpectedState{}, err
		}
		state.RemoteRouters[remote] = address
	}

	return state, nil
}

// routerBinding returns the form a remote router address takes in an EVM router's enrollment:
// EVM addresses as is, Solana program ids as their 32 bytes in hex.
func routerBinding(remote chainsmetadata.Metadata, address string) (string, error) {
	switch remote.Family {
	case chainsel.FamilySolana:
		programID, err := solana.PublicKeyFromBase58(address)
		if err != nil {
			return "", fmt.Errorf("invalid router address on %s: %w", remote.Name, err)
		}

		return types.Bytes32ToAddress(programID), nil
	default:
		return address, nil
	}
}
