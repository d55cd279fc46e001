package evm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// DefaultAdminRole is the name of the AccessControl admin role, whose id is zero.
const DefaultAdminRole = "DEFAULT_ADMIN_ROLE"

// RoleID returns the AccessControl id of a role. A role may be given as a 0x-prefixed 32 byte
// id or by name, in which case the id is keccak256 of the name (as declared by
// `bytes32 public constant PROPOSER_ROLE = keccak256("PROPOSER_ROLE")`).
func RoleID(role string) common.Hash {
	if role == DefaultAdminRole {
		return common.Hash{}
	}
	if has0x(role) && len(role) == 2+2*common.HashLength {
		if b, err := hexutil.Decode(role); err == nil {
			return common.BytesToHash(b)
		}
	}

	return crypto.Keccak256Hash([]byte(role))
}

func has0x(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
