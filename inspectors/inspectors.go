package inspectors

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gagliardetto/solana-go/rpc"
	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/smartcontractkit/deploycheck/chainsmetadata"
	"github.com/smartcontractkit/deploycheck/sdk"
	"github.com/smartcontractkit/deploycheck/sdk/evm"
	"github.com/smartcontractkit/deploycheck/sdk/solana"
	"github.com/smartcontractkit/deploycheck/types"
)

// ChainInspector is an inspector holding an RPC connection that must be closed.
type ChainInspector struct {
	sdk.Inspector
	close func()
}

// Close releases the RPC connection of the inspector.
func (c ChainInspector) Close() {
	if c.close != nil {
		c.close()
	}
}

// FetchInspectors connects an inspector to each of the given chains. Domain ids of remote chains
// are taken from the whole registry. Chains that cannot be connected are returned in the error
// map.
func FetchInspectors(
	ctx context.Context, registry *chainsmetadata.Registry, chains []types.ChainName, rpcURLs map[types.ChainName]string,
) (map[types.ChainName]ChainInspector, map[types.ChainName]error) {
	inspectors := map[types.ChainName]ChainInspector{}
	errs := map[types.ChainName]error{}
	domains := registry.Domains()

	for _, chain := range chains {
		metadata, ok := registry.Get(chain)
		if !ok {
			errs[chain] = chainsmetadata.NewUnknownChainError(chain)
			continue
		}

		url, ok := rpcURLs[chain]
		if !ok || url == "" {
			errs[chain] = fmt.Errorf("no RPC URL configured for chain %s", chain)
			continue
		}

		inspector, err := GetInspectorFromChain(ctx, metadata, url, domains)
		if err != nil {
			errs[chain] = fmt.Errorf("error getting inspector for chain %s: %w", chain, err)
			continue
		}
		inspectors[chain] = inspector
	}

	return inspectors, errs
}

// GetInspectorFromChain returns an inspector for the given chain, connected to rpcURL.
func GetInspectorFromChain(
	ctx context.Context, metadata chainsmetadata.Metadata, rpcURL string, domains map[types.ChainName]uint32,
) (ChainInspector, error) {
	switch metadata.Family {
	case chainsel.FamilyEVM:
		client, err := ethclient.DialContext(ctx, rpcURL)
		if err != nil {
			return ChainInspector{}, fmt.Errorf("error dialing evm rpc: %w", err)
		}

		chainID, err := metadata.EVMChainID()
		if err != nil {
			client.Close()
			return ChainInspector{}, err
		}

		inspector := evm.NewInspector(client, evm.WithDomains(domains))
		if err := inspector.VerifyChainID(ctx, metadata.Name, chainID); err != nil {
			client.Close()
			return ChainInspector{}, err
		}

		return ChainInspector{Inspector: inspector, close: client.Close}, nil
	case chainsel.FamilySolana:
		client := rpc.New(rpcURL)

		return ChainInspector{Inspector: solana.NewInspector(client), close: func() { _ = client.Close() }}, nil
	default:
		return ChainInspector{}, fmt.Errorf("unsupported chain family %s", metadata.Family)
	}
}
