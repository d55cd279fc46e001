package evm

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

// ContractReader is the subset of an EVM RPC client needed to read contract state.
// *ethclient.Client satisfies it.
type ContractReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
	CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	StorageAt(ctx context.Context, account common.Address, key common.Hash, blockNumber *big.Int) ([]byte, error)
}

// AdminSlot is the EIP-1967 storage slot holding the admin of a transparent proxy:
// bytes32(uint256(keccak256("eip1967.proxy.admin")) - 1).
var AdminSlot = common.HexToHash("0xb53127684a568b3173ae13b9f8a6016e243e63b6e8ee1178d6a717850b5d6103")

// slotToAddress returns the address held in the low 20 bytes of a storage word.
func slotToAddress(word []byte) common.Address {
	if len(word) > common.AddressLength {
		word = word[len(word)-common.AddressLength:]
	}

	return common.BytesToAddress(word)
}
