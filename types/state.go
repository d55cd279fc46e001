package types //nolint:revive,nolintlint // allow pkg name 'types'

// ExpectedState is the expected configuration of a single governed contract on a chain.
//
// Optional sections are pointers: a nil section means the corresponding check does not apply to
// the contract. A non-nil section with a missing required value is a configuration authoring
// defect and is reported by the checker as a malformed config error.
type ExpectedState struct {
	// Contract is the reference name of the contract, e.g. "mailbox" or "helloworld".
	Contract string `json:"contract" validate:"required"`
	// Address is the address the contract is expected to be deployed at.
	Address string `json:"address" validate:"required"`

	Bytecode *BytecodeExpectation `json:"bytecode,omitempty"`

	// Owner is the expected owner of an Ownable contract. Empty when the contract is not Ownable.
	Owner string `json:"owner,omitempty"`

	Proxy    *ProxyExpectation    `json:"proxy,omitempty"`
	Timelock *TimelockExpectation `json:"timelock,omitempty"`

	// Roles lists the role assignments the contract is expected to hold, in check order.
	Roles []RoleAssignment `json:"roles,omitempty" validate:"omitempty,dive"`

	// RemoteRouters maps each remote chain to the router or token address this contract is
	// expected to be bound to on that chain.
	RemoteRouters map[ChainName]string `json:"remoteRouters,omitempty"`
}

// BytecodeExpectation holds the expected code fingerprints of a contract.
type BytecodeExpectation struct {
	// Hash is the fingerprint of the full deployed code.
	Hash string `json:"hash,omitempty"`
	// MetadataFreeHash is the fingerprint of the deployed code with the compiler metadata
	// trailer removed.
	MetadataFreeHash string `json:"metadataFreeHash,omitempty"`
}

// ProxyExpectation marks a contract as a transparent upgradeable proxy.
type ProxyExpectation struct {
	// Admin is the expected proxy admin.
	Admin string `json:"admin"`
}

// TimelockExpectation marks a contract as governed by a timelock controller.
type TimelockExpectation struct {
	// MinDelay is the expected minimum delay, in seconds.
	MinDelay *uint64 `json:"minDelay"`
}

// RoleAssignment is an expected (role, account) membership fact.
type RoleAssignment struct {
	Role    string `json:"role"`
	Account string `json:"account"`
	// Revoked inverts the expectation: the account must not hold the role.
	Revoked bool `json:"revoked,omitempty"`
}

// Member returns the expected membership of the account in the role.
func (r RoleAssignment) Member() bool {
	return !r.Revoked
}

// ObservedState is the state of a single contract as read from the chain at a point in time.
type ObservedState struct {
	Contract string `json:"contract"`
	Address  string `json:"address"`

	// Deployed is false when no code exists at the address. All other fields are meaningless
	// when the contract is not deployed.
	Deployed bool `json:"deployed"`

	BytecodeHash             string `json:"bytecodeHash,omitempty"`
	MetadataFreeBytecodeHash string `json:"metadataFreeBytecodeHash,omitempty"`

	Owner         string `json:"owner,omitempty"`
	ProxyAdmin    string `json:"proxyAdmin,omitempty"`
	TimelockDelay uint64 `json:"timelockDelay,omitempty"`

	Roles         []RoleMembership     `json:"roles,omitempty"`
	RemoteRouters map[ChainName]string `json:"remoteRouters,omitempty"`
}

// RoleMembership is an observed (role, account) membership fact.
type RoleMembership struct {
	Role    string `json:"role"`
	Account string `json:"account"`
	Member  bool   `json:"member"`
}

// HasRole reports whether the account was observed holding the role. Pairs that were not read
// are reported as not held.
func (o ObservedState) HasRole(role, account string) bool {
	for _, m := range o.Roles {
		if m.Role == role && SameAddress(m.Account, account) {
			return m.Member
		}
	}

	return false
}

// RemoteRouter returns the observed binding for a remote chain, or an empty string when the
// contract has no binding for it.
func (o ObservedState) RemoteRouter(chain ChainName) string {
	return o.RemoteRouters[chain]
}
