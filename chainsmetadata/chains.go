package chainsmetadata

import (
	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/smartcontractkit/deploycheck/types"
)

// Chain metadata constructors. Each call returns a fresh value.

func Celo() Metadata {
	m := evm("celo", 42220, 0)
	m.GnosisSafeTransactionServiceURL = "https://transaction-service.gnosis-safe-staging.celo-networks-dev.org"

	return m
}

func Ethereum() Metadata {
	m := evm("ethereum", 1, 20)
	m.GnosisSafeTransactionServiceURL = "https://safe-transaction.gnosis.io"

	return m
}

func Arbitrum() Metadata {
	m := evm("arbitrum", 42161, 0)
	m.GasCurrencyCoinGeckoID = "ethereum"
	m.GnosisSafeTransactionServiceURL = "https://safe-transaction.arbitrum.gnosis.io/"

	return m
}

func Optimism() Metadata {
	m := evm("optimism", 10, 0)
	m.GasCurrencyCoinGeckoID = "ethereum"
	m.GnosisSafeTransactionServiceURL = "https://safe-transaction.optimism.gnosis.io/"

	return m
}

func BSC() Metadata {
	m := evm("bsc", 56, 15)
	m.GasCurrencyCoinGeckoID = "binancecoin"
	m.GnosisSafeTransactionServiceURL = "https://safe-transaction.bsc.gnosis.io/"

	return m
}

func Avalanche() Metadata {
	m := evm("avalanche", 43114, 3)
	m.Paginate = &Pagination{Blocks: 100000, From: 6765067}
	m.GasCurrencyCoinGeckoID = "avalanche-2"
	m.GnosisSafeTransactionServiceURL = "https://safe-transaction.avalanche.gnosis.io/"

	return m
}

func Polygon() Metadata {
	m := evm("polygon", 137, 256)
	m.Paginate = &Pagination{Blocks: 10000, From: 19657100}
	m.GasCurrencyCoinGeckoID = "matic-network"
	m.GnosisSafeTransactionServiceURL = "https://safe-transaction.polygon.gnosis.io/"

	return m
}

func Moonbeam() Metadata { return evm("moonbeam", 1284, 1) }

func Alfajores() Metadata      { return evm("alfajores", 44787, 0) }
func Fuji() Metadata           { return evm("fuji", 43113, 3) }
func Goerli() Metadata         { return evm("goerli", 5, 2) }
func Sepolia() Metadata        { return evm("sepolia", 11155111, 2) }
func OptimismGoerli() Metadata { return evm("optimismgoerli", 420, 1) }
func ArbitrumGoerli() Metadata { return evm("arbitrumgoerli", 421613, 1) }
func ZkSync2Testnet() Metadata { return evm("zksync2testnet", 280, 1) }
func BSCTestnet() Metadata     { return evm("bsctestnet", 97, 9) }
func MoonbaseAlpha() Metadata  { return evm("moonbasealpha", 1287, 1) }
func ProteusTestnet() Metadata { return evm("proteustestnet", 88002, 1) }

func Mumbai() Metadata {
	m := evm("mumbai", 80001, 32)
	m.Paginate = &Pagination{Blocks: 10000, From: 22900000}

	return m
}

func SolanaDevnet() Metadata {
	return Metadata{
		Name:                "solanadevnet",
		ID:                  1399811151,
		ChainID:             chainsel.SOLANA_DEVNET.ChainID,
		Family:              chainsel.FamilySolana,
		FinalityBlocks:      0,
		NativeTokenDecimals: 9,
	}
}

// Local test chains.

func Test1() Metadata { return testChain("test1", 13371, 0) }
func Test2() Metadata { return testChain("test2", 13372, 1) }
func Test3() Metadata { return testChain("test3", 13373, 2) }

func testChain(name types.ChainName, id, finalityBlocks uint32) Metadata {
	m := evm(name, id, finalityBlocks)
	m.Test = true

	return m
}

// all lists every known chain.
func all() []Metadata {
	return []Metadata{
		Arbitrum(), BSC(), Celo(), Ethereum(), Avalanche(), Optimism(), Polygon(), Moonbeam(),
		Alfajores(), Fuji(), Goerli(), Sepolia(), Mumbai(), BSCTestnet(), MoonbaseAlpha(), OptimismGoerli(),
		ArbitrumGoerli(), ZkSync2Testnet(), ProteusTestnet(), SolanaDevnet(),
		Test1(), Test2(), Test3(),
	}
}
