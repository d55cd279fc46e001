package chainsmetadata

import (
	"fmt"
	"slices"

	"github.com/smartcontractkit/deploycheck/types"
)

const gwei = 1_000_000_000

// Role is an off-chain agent role.
type Role string

const (
	RoleValidator Role = "validator"
	RoleRelayer   Role = "relayer"
	RoleScraper   Role = "scraper"
)

// Environment is a named set of chains deployed together.
type Environment struct {
	Name string
	// Chains are the chains core contracts are deployed to.
	Chains []types.ChainName
	// Overrides replace the transaction overrides of the registry metadata.
	Overrides map[types.ChainName]TransactionOverrides
	// AgentChains are the chains each agent role runs on.
	AgentChains map[Role][]types.ChainName
}

// Registry returns the metadata of the environment's chains, with overrides applied.
func (e Environment) Registry(base *Registry) (*Registry, error) {
	r, err := base.Subset(e.Chains...)
	if err != nil {
		return nil, fmt.Errorf("environment %s: %w", e.Name, err)
	}

	for _, chain := range types.SortedChainNames(e.Overrides) {
		m, ok := r.Get(chain)
		if !ok {
			return nil, fmt.Errorf("environment %s: override for chain outside environment: %s", e.Name, chain)
		}
		overrides := e.Overrides[chain]
		m.TransactionOverrides = &overrides
		r = r.with(m)
	}

	return r, nil
}

var testnet3EthereumChains = []types.ChainName{
	Alfajores().Name,
	Fuji().Name,
	Mumbai().Name,
	BSCTestnet().Name,
	Goerli().Name,
	Sepolia().Name,
	MoonbaseAlpha().Name,
	OptimismGoerli().Name,
	ArbitrumGoerli().Name,
}

var testnet3NonEthereumChains = []types.ChainName{
	SolanaDevnet().Name,
}

// Testnet3 returns the testnet3 environment.
func Testnet3() Environment {
	supported := slices.Concat(testnet3EthereumChains, testnet3NonEthereumChains)
	validators := slices.Concat(supported, []types.ChainName{ProteusTestnet().Name})

	return Environment{
		Name:   "testnet3",
		Chains: supported,
		Overrides: map[types.ChainName]TransactionOverrides{
			Mumbai().Name: {
				MaxFeePerGas:         70 * gwei,
				MaxPriorityFeePerGas: 40 * gwei,
			},
		},
		AgentChains: map[Role][]types.ChainName{
			RoleValidator: validators,
			RoleRelayer:   slices.Clone(validators),
			RoleScraper:   slices.Clone(supported),
		},
	}
}

// Test returns the environment of the local test chains.
func Test() Environment {
	chains := []types.ChainName{Test1().Name, Test2().Name, Test3().Name}

	return Environment{
		Name:   "test",
		Chains: chains,
		AgentChains: map[Role][]types.ChainName{
			RoleValidator: slices.Clone(chains),
			RoleRelayer:   slices.Clone(chains),
			RoleScraper:   slices.Clone(chains),
		},
	}
}

// GetEnvironment returns the environment with the given name.
func GetEnvironment(name string) (Environment, error) {
	switch name {
	case "testnet3":
		return Testnet3(), nil
	case "test":
		return Test(), nil
	default:
		return Environment{}, fmt.Errorf("unknown environment: %q", name)
	}
}
