package deploycheck

import (
	"fmt"
	"slices"

	"github.com/smartcontractkit/deploycheck/types"
)

// ViolationType is the stable tag identifying the kind of a violation.
type ViolationType string

const (
	ViolationNotDeployed        ViolationType = "NotDeployed"
	ViolationBytecodeMismatch   ViolationType = "BytecodeMismatch"
	ViolationOwner              ViolationType = "Owner"
	ViolationProxyAdmin         ViolationType = "ProxyAdmin"
	ViolationTimelockController ViolationType = "TimelockController"
	ViolationAccessControl      ViolationType = "AccessControl"
	ViolationTokenMismatch      ViolationType = "TokenMismatch"
)

var violationTypes = []ViolationType{
	ViolationNotDeployed,
	ViolationBytecodeMismatch,
	ViolationOwner,
	ViolationProxyAdmin,
	ViolationTimelockController,
	ViolationAccessControl,
	ViolationTokenMismatch,
}

// ViolationTypes returns every violation type, in check order.
func ViolationTypes() []ViolationType {
	return slices.Clone(violationTypes)
}

// ParseViolationType parses a stable violation tag.
func ParseViolationType(s string) (ViolationType, error) {
	t := ViolationType(s)
	if !slices.Contains(violationTypes, t) {
		return "", fmt.Errorf("unknown violation type: %q", s)
	}

	return t, nil
}

// String returns the stable tag of the violation type.
func (t ViolationType) String() string {
	return string(t)
}

// ContractRef identifies the contract a violation was detected on.
type ContractRef struct {
	Chain types.ChainName `json:"chain"`
	// Contract is the reference name of the contract under test.
	Contract string `json:"contract,omitempty"`
	Address  string `json:"address,omitempty"`
}

// Violation is a detected mismatch between expected and observed state.
//
// The set of implementations is closed: each ViolationType has exactly one variant and the
// interface cannot be implemented outside this package. Use a Visitor to handle every variant;
// adding a variant adds a Visitor method, so unhandled kinds fail to compile.
type Violation interface {
	// Type returns the kind of the violation.
	Type() ViolationType
	// Ref returns the chain and contract the violation was detected on.
	Ref() ContractRef
	// Accept dispatches the violation to the matching Visitor method.
	Accept(v Visitor)

	sealed()
}

// Visitor handles every violation variant.
type Visitor interface {
	VisitNotDeployed(NotDeployedViolation)
	VisitBytecodeMismatch(BytecodeMismatchViolation)
	VisitOwner(OwnerViolation)
	VisitProxyAdmin(ProxyAdminViolation)
	VisitTimelockController(TimelockControllerViolation)
	VisitAccessControl(AccessControlViolation)
	VisitTokenMismatch(TokenMismatchViolation)
}

var (
	_ Violation = NotDeployedViolation{}
	_ Violation = BytecodeMismatchViolation{}
	_ Violation = OwnerViolation{}
	_ Violation = ProxyAdminViolation{}
	_ Violation = TimelockControllerViolation{}
	_ Violation = AccessControlViolation{}
	_ Violation = TokenMismatchViolation{}
)

const (
	notDeployedExpected = "deployed"
	notDeployedActual   = "absent"
)

// NotDeployedViolation is reported when no code exists at the expected address.
type NotDeployedViolation struct {
	ContractRef
}

func (NotDeployedViolation) Type() ViolationType  { return ViolationNotDeployed }
func (v NotDeployedViolation) Ref() ContractRef   { return v.ContractRef }
func (v NotDeployedViolation) Accept(vis Visitor) { vis.VisitNotDeployed(v) }
func (NotDeployedViolation) sealed()              {}

// Expected returns the expected deployment status.
func (NotDeployedViolation) Expected() string { return notDeployedExpected }

// Actual returns the observed deployment status.
func (NotDeployedViolation) Actual() string { return notDeployedActual }

// BytecodeMismatchViolation is reported when the deployed code fingerprint differs from the
// expected build artifact.
type BytecodeMismatchViolation struct {
	ContractRef
	Expected string
	Actual   string
}

func (BytecodeMismatchViolation) Type() ViolationType  { return ViolationBytecodeMismatch }
func (v BytecodeMismatchViolation) Ref() ContractRef   { return v.ContractRef }
func (v BytecodeMismatchViolation) Accept(vis Visitor) { vis.VisitBytecodeMismatch(v) }
func (BytecodeMismatchViolation) sealed()              {}

// OwnerViolation is reported when an Ownable contract has an unexpected owner.
type OwnerViolation struct {
	ContractRef
	Expected string
	Actual   string
}

func (OwnerViolation) Type() ViolationType  { return ViolationOwner }
func (v OwnerViolation) Ref() ContractRef   { return v.ContractRef }
func (v OwnerViolation) Accept(vis Visitor) { vis.VisitOwner(v) }
func (OwnerViolation) sealed()              {}

// ProxyAdminViolation is reported when a transparent proxy is administered by an unexpected
// account.
type ProxyAdminViolation struct {
	ContractRef
	// Proxy is the address of the proxy whose admin differs.
	Proxy    string
	Expected string
	Actual   string
}

func (ProxyAdminViolation) Type() ViolationType  { return ViolationProxyAdmin }
func (v ProxyAdminViolation) Ref() ContractRef   { return v.ContractRef }
func (v ProxyAdminViolation) Accept(vis Visitor) { vis.VisitProxyAdmin(v) }
func (ProxyAdminViolation) sealed()              {}

// TimelockControllerViolation is reported when a timelock enforces an unexpected minimum delay.
type TimelockControllerViolation struct {
	ContractRef
	// Expected and Actual are delays in seconds.
	Expected uint64
	Actual   uint64
}

func (TimelockControllerViolation) Type() ViolationType  { return ViolationTimelockController }
func (v TimelockControllerViolation) Ref() ContractRef   { return v.ContractRef }
func (v TimelockControllerViolation) Accept(vis Visitor) { vis.VisitTimelockController(v) }
func (TimelockControllerViolation) sealed()              {}

// AccessControlViolation is reported when an account's membership in a role differs from the
// expected membership.
type AccessControlViolation struct {
	ContractRef
	Role     string
	Account  string
	Expected bool
	Actual   bool
}

func (AccessControlViolation) Type() ViolationType  { return ViolationAccessControl }
func (v AccessControlViolation) Ref() ContractRef   { return v.ContractRef }
func (v AccessControlViolation) Accept(vis Visitor) { vis.VisitAccessControl(v) }
func (AccessControlViolation) sealed()              {}

// TokenMismatchViolation is reported when a router or token contract is bound to an unexpected
// address on a remote chain.
type TokenMismatchViolation struct {
	ContractRef
	RemoteChain types.ChainName
	Expected    string
	Actual      string
}

func (TokenMismatchViolation) Type() ViolationType  { return ViolationTokenMismatch }
func (v TokenMismatchViolation) Ref() ContractRef   { return v.ContractRef }
func (v TokenMismatchViolation) Accept(vis Visitor) { vis.VisitTokenMismatch(v) }
func (TokenMismatchViolation) sealed()              {}
