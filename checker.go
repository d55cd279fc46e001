package deploycheck

import (
	"fmt"
	"strings"

	"github.com/smartcontractkit/deploycheck/types"
)

// BytecodePolicy selects which code fingerprint is compared by the bytecode check.
type BytecodePolicy string

const (
	// BytecodeExact compares fingerprints of the full deployed code.
	BytecodeExact BytecodePolicy = "exact"
	// BytecodeIgnoreMetadata compares fingerprints of the code with the compiler metadata
	// trailer removed, tolerating differences in source paths, comments or build environment.
	BytecodeIgnoreMetadata BytecodePolicy = "ignore-metadata"
)

// ParseBytecodePolicy parses a bytecode policy name.
func ParseBytecodePolicy(s string) (BytecodePolicy, error) {
	switch p := BytecodePolicy(s); p {
	case BytecodeExact, BytecodeIgnoreMetadata:
		return p, nil
	default:
		return "", fmt.Errorf("unknown bytecode policy: %q", s)
	}
}

// Checker compares expected against observed contract state.
//
// A Checker holds no state across calls and is safe for concurrent use.
type Checker struct {
	bytecodePolicy BytecodePolicy
	concurrency    int
}

// Option configures a Checker.
type Option func(*Checker)

// WithBytecodePolicy sets the fingerprint compared by the bytecode check.
func WithBytecodePolicy(p BytecodePolicy) Option {
	return func(c *Checker) {
		c.bytecodePolicy = p
	}
}

// WithConcurrency limits the number of chains checked in parallel by CheckAll. Values below one
// remove the limit.
func WithConcurrency(n int) Option {
	return func(c *Checker) {
		c.concurrency = n
	}
}

// NewChecker creates a new Checker. Without options it compares exact bytecode fingerprints.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{bytecodePolicy: BytecodeExact}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Check compares the expected state of a contract on a chain against its observed state.
//
// Violations are returned in check order: deployment, bytecode, owner, proxy admin, timelock,
// roles (in config order) and remote bindings (by remote chain name). When the contract is not
// deployed only a NotDeployedViolation is returned. An error is returned only when the expected
// state is missing a value needed by a check that applies to the contract.
func (c *Checker) Check(chain types.ChainName, expected types.ExpectedState, observed types.ObservedState) ([]Violation, error) {
	if err := chain.Validate(); err != nil {
		return nil, NewMalformedExpectedConfigError(chain, expected.Contract, "chain")
	}

	ref := ContractRef{Chain: chain, Contract: expected.Contract, Address: expected.Address}

	if !observed.Deployed {
		return []Violation{NotDeployedViolation{ContractRef: ref}}, nil
	}

	violations := make([]Violation, 0)
	checks := []func(ContractRef, types.ExpectedState, types.ObservedState) ([]Violation, error){
		c.checkBytecode,
		checkOwner,
		checkProxyAdmin,
		checkTimelock,
		checkRoles,
		checkRemoteRouters,
	}
	for _, check := range checks {
		found, err := check(ref, expected, observed)
		if err != nil {
			return nil, err
		}
		violations = append(violations, found...)
	}

	return violations, nil
}

func (c *Checker) checkBytecode(ref ContractRef, expected types.ExpectedState, observed types.ObservedState) ([]Violation, error) {
	if expected.Bytecode == nil {
		return nil, nil
	}

	want, got, field := expected.Bytecode.Hash, observed.BytecodeHash, "bytecode.hash"
	if c.bytecodePolicy == BytecodeIgnoreMetadata {
		want, got, field = expected.Bytecode.MetadataFreeHash, observed.MetadataFreeBytecodeHash, "bytecode.metadataFreeHash"
	}
	if want == "" {
		return nil, NewMalformedExpectedConfigError(ref.Chain, ref.Contract, field)
	}

	if sameFingerprint(want, got) {
		return nil, nil
	}

	return []Violation{BytecodeMismatchViolation{ContractRef: ref, Expected: want, Actual: got}}, nil
}

func checkOwner(ref ContractRef, expected types.ExpectedState, observed types.ObservedState) ([]Violation, error) {
	if expected.Owner == "" || types.SameAddress(expected.Owner, observed.Owner) {
		return nil, nil
	}

	return []Violation{OwnerViolation{ContractRef: ref, Expected: expected.Owner, Actual: observed.Owner}}, nil
}

func checkProxyAdmin(ref ContractRef, expected types.ExpectedState, observed types.ObservedState) ([]Violation, error) {
	if expected.Proxy == nil {
		return nil, nil
	}
	if expected.Proxy.Admin == "" {
		return nil, NewMalformedExpectedConfigError(ref.Chain, ref.Contract, "proxy.admin")
	}

	if types.SameAddress(expected.Proxy.Admin, observed.ProxyAdmin) {
		return nil, nil
	}

	return []Violation{ProxyAdminViolation{
		ContractRef: ref,
		Proxy:       expected.Address,
		Expected:    expected.Proxy.Admin,
		Actual:      observed.ProxyAdmin,
	}}, nil
}

func checkTimelock(ref ContractRef, expected types.ExpectedState, observed types.ObservedState) ([]Violation, error) {
	if expected.Timelock == nil {
		return nil, nil
	}
	if expected.Timelock.MinDelay == nil {
		return nil, NewMalformedExpectedConfigError(ref.Chain, ref.Contract, "timelock.minDelay")
	}

	if *expected.Timelock.MinDelay == observed.TimelockDelay {
		return nil, nil
	}

	return []Violation{TimelockControllerViolation{
		ContractRef: ref,
		Expected:    *expected.Timelock.MinDelay,
		Actual:      observed.TimelockDelay,
	}}, nil
}

// checkRoles only walks the expected assignments: roles held on-chain that the config does not
// mention are never reported.
func checkRoles(ref ContractRef, expected types.ExpectedState, observed types.ObservedState) ([]Violation, error) {
	var violations []Violation
	for i, assignment := range expected.Roles {
		if assignment.Role == "" {
			return nil, NewMalformedExpectedConfigError(ref.Chain, ref.Contract, fmt.Sprintf("roles[%d].role", i))
		}
		if assignment.Account == "" {
			return nil, NewMalformedExpectedConfigError(ref.Chain, ref.Contract, fmt.Sprintf("roles[%d].account", i))
		}

		want := assignment.Member()
		got := observed.HasRole(assignment.Role, assignment.Account)
		if want == got {
			continue
		}

		violations = append(violations, AccessControlViolation{
			ContractRef: ref,
			Role:        assignment.Role,
			Account:     assignment.Account,
			Expected:    want,
			Actual:      got,
		})
	}

	return violations, nil
}

// checkRemoteRouters only walks the remote chains named by the expected state, in name order.
func checkRemoteRouters(ref ContractRef, expected types.ExpectedState, observed types.ObservedState) ([]Violation, error) {
	var violations []Violation
	for _, remote := range types.SortedChainNames(expected.RemoteRouters) {
		want := expected.RemoteRouters[remote]
		if remote == "" {
			return nil, NewMalformedExpectedConfigError(ref.Chain, ref.Contract, "remoteRouters chain name")
		}
		if want == "" {
			return nil, NewMalformedExpectedConfigError(ref.Chain, ref.Contract, fmt.Sprintf("remoteRouters[%s]", remote))
		}

		got := observed.RemoteRouter(remote)
		if types.SameAddress(want, got) {
			continue
		}

		violations = append(violations, TokenMismatchViolation{
			ContractRef: ref,
			RemoteChain: remote,
			Expected:    want,
			Actual:      got,
		})
	}

	return violations, nil
}

// sameFingerprint compares two hex fingerprints, ignoring case.
func sameFingerprint(a, b string) bool {
	return strings.EqualFold(a, b)
}

// CheckChain checks every expected contract of a chain, in config order, against the observed
// snapshot with the same contract name.
func (c *Checker) CheckChain(chain types.ChainName, expected []types.ExpectedState, observed []types.ObservedState) ([]Violation, error) {
	if err := chain.Validate(); err != nil {
		return nil, NewMalformedExpectedConfigError(chain, "", "chain")
	}

	byContract := make(map[string]types.ObservedState, len(observed))
	for _, o := range observed {
		byContract[o.Contract] = o
	}

	violations := make([]Violation, 0)
	for _, e := range expected {
		if e.Contract == "" {
			return nil, NewMalformedExpectedConfigError(chain, "", "contract")
		}

		o, ok := byContract[e.Contract]
		if !ok {
			return nil, NewMissingObservedStateError(chain, e.Contract)
		}

		found, err := c.Check(chain, e, o)
		if err != nil {
			return nil, err
		}
		violations = append(violations, found...)
	}

	return violations, nil
}

var defaultChecker = NewChecker()

// Check compares expected against observed contract state using exact bytecode fingerprints.
// See Checker.Check.
func Check(chain types.ChainName, expected types.ExpectedState, observed types.ObservedState) ([]Violation, error) {
	return defaultChecker.Check(chain, expected, observed)
}
