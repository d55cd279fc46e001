package evm

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	methodOwner       = "owner"
	methodGetMinDelay = "getMinDelay"
	methodHasRole     = "hasRole"
	methodRouters     = "routers"
)

// ContractABI holds the view functions read from governed contracts: Ownable.owner,
// TimelockController.getMinDelay, AccessControl.hasRole and the Hyperlane Router.routers mapping.
const ContractABI = `[
	{"type":"function","name":"owner","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"getMinDelay","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"hasRole","stateMutability":"view","inputs":[{"name":"role","type":"bytes32"},{"name":"account","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"routers","stateMutability":"view","inputs":[{"name":"domain","type":"uint32"}],"outputs":[{"name":"","type":"bytes32"}]}
]`

var contractABI = mustParseABI(ContractABI)

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}

	return parsed
}
