// Package chainsmetadata holds the static description of every chain a deployment may span.
package chainsmetadata

import (
	"fmt"
	"strconv"

	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/smartcontractkit/deploycheck/types"
)

// Pagination bounds log queries on RPCs that limit the block range of eth_getLogs.
type Pagination struct {
	Blocks uint64 `json:"blocks"`
	From   uint64 `json:"from"`
}

// TransactionOverrides are the fee settings used when transacting on a chain.
type TransactionOverrides struct {
	MaxFeePerGas         uint64 `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas uint64 `json:"maxPriorityFeePerGas,omitempty"`
}

// Metadata describes a chain.
type Metadata struct {
	Name types.ChainName `json:"name"`
	// ID is the domain id of the chain. For EVM chains it is the EIP-155 chain id.
	ID uint32 `json:"id"`
	// ChainID is the chain id understood by chain-selectors: the decimal chain id for EVM chains,
	// the genesis hash for Solana chains.
	ChainID string `json:"chainId"`
	Family  string `json:"family"`

	FinalityBlocks      uint32      `json:"finalityBlocks"`
	NativeTokenDecimals uint8       `json:"nativeTokenDecimals"`
	Paginate            *Pagination `json:"paginate,omitempty"`
	// GasCurrencyCoinGeckoID is set when the CoinGecko id of the gas token does not match the
	// chain name.
	GasCurrencyCoinGeckoID          string                `json:"gasCurrencyCoinGeckoId,omitempty"`
	GnosisSafeTransactionServiceURL string                `json:"gnosisSafeTransactionServiceUrl,omitempty"`
	TransactionOverrides            *TransactionOverrides `json:"transactionOverrides,omitempty"`
	// Test marks local development chains.
	Test bool `json:"test,omitempty"`
}

// Clone returns a deep copy of m.
func (m Metadata) Clone() Metadata {
	if m.Paginate != nil {
		paginate := *m.Paginate
		m.Paginate = &paginate
	}
	if m.TransactionOverrides != nil {
		overrides := *m.TransactionOverrides
		m.TransactionOverrides = &overrides
	}

	return m
}

// Selector returns the chain selector of the chain.
func (m Metadata) Selector() (uint64, error) {
	details, err := chainsel.GetChainDetailsByChainIDAndFamily(m.ChainID, m.Family)
	if err != nil {
		return 0, fmt.Errorf("no chain selector for %s: %w", m.Name, err)
	}

	return details.ChainSelector, nil
}

// IsEVM reports whether the chain belongs to the EVM family.
func (m Metadata) IsEVM() bool {
	return m.Family == chainsel.FamilyEVM
}

// EVMChainID returns the EIP-155 chain id of an EVM chain.
func (m Metadata) EVMChainID() (uint64, error) {
	if !m.IsEVM() {
		return 0, fmt.Errorf("chain %s is not an EVM chain", m.Name)
	}

	return strconv.ParseUint(m.ChainID, 10, 64)
}

// evm builds the metadata of an EVM chain with 18 decimal native token.
func evm(name types.ChainName, id uint32, finalityBlocks uint32) Metadata {
	return Metadata{
		Name:                name,
		ID:                  id,
		ChainID:             strconv.FormatUint(uint64(id), 10),
		Family:              chainsel.FamilyEVM,
		FinalityBlocks:      finalityBlocks,
		NativeTokenDecimals: 18,
	}
}
