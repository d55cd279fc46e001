package deploycheck

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/gowebpki/jcs"
	"github.com/hashicorp/go-multierror"
	"github.com/olekukonko/tablewriter"

	"github.com/smartcontractkit/deploycheck/types"
)

// Report is the result of checking a set of chains.
type Report struct {
	// Violations holds the ordered violations of every chain that was checked. Chains that
	// checked clean map to an empty slice.
	Violations map[types.ChainName][]Violation
	// Errors holds the chains that could not be checked, with the reason.
	Errors map[types.ChainName]error
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{
		Violations: make(map[types.ChainName][]Violation),
		Errors:     make(map[types.ChainName]error),
	}
}

// Flag records that a chain could not be checked. Any violations recorded for the chain are
// dropped, since they would be incomplete.
func (r *Report) Flag(chain types.ChainName, err error) {
	delete(r.Violations, chain)
	r.Errors[chain] = err
}

// Chains returns every chain present in the report, checked or errored, in name order.
func (r *Report) Chains() []types.ChainName {
	chains := slices.Collect(maps.Keys(r.Violations))
	for chain := range r.Errors {
		if _, ok := r.Violations[chain]; !ok {
			chains = append(chains, chain)
		}
	}
	slices.Sort(chains)

	return chains
}

// Count returns the total number of violations.
func (r *Report) Count() int {
	n := 0
	for _, v := range r.Violations {
		n += len(v)
	}

	return n
}

// Clean reports whether no violations and no errors were recorded.
func (r *Report) Clean() bool {
	return r.Count() == 0 && len(r.Errors) == 0
}

// Err returns the chain errors combined into a single error, or nil.
func (r *Report) Err() error {
	var result *multierror.Error
	for _, chain := range types.SortedChainNames(r.Errors) {
		result = multierror.Append(result, fmt.Errorf("chain %s: %w", chain, r.Errors[chain]))
	}

	return result.ErrorOrNil()
}

// ViolationRecord is the serialized form of a violation.
type ViolationRecord struct {
	Chain    types.ChainName `json:"chain"`
	Type     ViolationType   `json:"type"`
	Contract string          `json:"contract,omitempty"`
	Address  string          `json:"address,omitempty"`
	Expected any             `json:"expected"`
	Actual   any             `json:"actual"`

	Role        string          `json:"role,omitempty"`
	Account     string          `json:"account,omitempty"`
	Proxy       string          `json:"proxy,omitempty"`
	RemoteChain types.ChainName `json:"remoteChain,omitempty"`
}

// NewViolationRecord converts a violation into its serialized form.
func NewViolationRecord(v Violation) ViolationRecord {
	b := &recordBuilder{}
	v.Accept(b)

	return b.record
}

// recordBuilder is the Visitor producing ViolationRecords.
type recordBuilder struct {
	record ViolationRecord
}

func (b *recordBuilder) base(v Violation, expected, actual any) ViolationRecord {
	ref := v.Ref()

	return ViolationRecord{
		Chain:    ref.Chain,
		Type:     v.Type(),
		Contract: ref.Contract,
		Address:  ref.Address,
		Expected: expected,
		Actual:   actual,
	}
}

func (b *recordBuilder) VisitNotDeployed(v NotDeployedViolation) {
	b.record = b.base(v, v.Expected(), v.Actual())
}

func (b *recordBuilder) VisitBytecodeMismatch(v BytecodeMismatchViolation) {
	b.record = b.base(v, v.Expected, v.Actual)
}

func (b *recordBuilder) VisitOwner(v OwnerViolation) {
	b.record = b.base(v, v.Expected, v.Actual)
}

func (b *recordBuilder) VisitProxyAdmin(v ProxyAdminViolation) {
	b.record = b.base(v, v.Expected, v.Actual)
	b.record.Proxy = v.Proxy
}

// VisitTimelockController records delays as decimal strings: JSON numbers above 2^53 do not
// survive canonicalization.
func (b *recordBuilder) VisitTimelockController(v TimelockControllerViolation) {
	b.record = b.base(v, strconv.FormatUint(v.Expected, 10), strconv.FormatUint(v.Actual, 10))
}

func (b *recordBuilder) VisitAccessControl(v AccessControlViolation) {
	b.record = b.base(v, v.Expected, v.Actual)
	b.record.Role = v.Role
	b.record.Account = v.Account
}

func (b *recordBuilder) VisitTokenMismatch(v TokenMismatchViolation) {
	b.record = b.base(v, v.Expected, v.Actual)
	b.record.RemoteChain = v.RemoteChain
}

// Records returns every violation in serialized form, ordered by chain name and then by the
// order the checker emitted them in.
func (r *Report) Records() []ViolationRecord {
	records := make([]ViolationRecord, 0, r.Count())
	for _, chain := range types.SortedChainNames(r.Violations) {
		for _, v := range r.Violations[chain] {
			records = append(records, NewViolationRecord(v))
		}
	}

	return records
}

type reportJSON struct {
	Violations map[types.ChainName][]ViolationRecord `json:"violations"`
	Errors     map[types.ChainName]string            `json:"errors"`
}

// MarshalJSON marshals the report with violations and errors keyed by chain.
func (r *Report) MarshalJSON() ([]byte, error) {
	out := reportJSON{
		Violations: make(map[types.ChainName][]ViolationRecord, len(r.Violations)),
		Errors:     make(map[types.ChainName]string, len(r.Errors)),
	}
	for chain, violations := range r.Violations {
		records := make([]ViolationRecord, 0, len(violations))
		for _, v := range violations {
			records = append(records, NewViolationRecord(v))
		}
		out.Violations[chain] = records
	}
	for chain, err := range r.Errors {
		out.Errors[chain] = err.Error()
	}

	return json.Marshal(out)
}

// Digest returns the sha256 hex digest of the canonical (RFC 8785) JSON form of the report. Two
// reports with the same content have the same digest.
func (r *Report) Digest() (string, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return "", err
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize report: %w", err)
	}
	sum := sha256.Sum256(canonical)

	return hex.EncodeToString(sum[:]), nil
}

// AsTable renders the report as a markdown table.
func (r *Report) AsTable() string {
	buf := new(bytes.Buffer)
	table := tablewriter.NewWriter(buf)
	table.SetHeader([]string{"Chain", "Contract", "Violation", "Expected", "Actual"})
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")

	if r.Count() == 0 && len(r.Errors) == 0 {
		table.Append([]string{"-", "-", "No violations.", "-", "-"})
		table.Render()

		return buf.String()
	}

	for _, rec := range r.Records() {
		table.Append([]string{
			rec.Chain.String(),
			rec.Contract,
			describe(rec),
			formatValue(rec.Expected),
			formatValue(rec.Actual),
		})
	}
	for _, chain := range types.SortedChainNames(r.Errors) {
		table.Append([]string{chain.String(), "-", "Error", "-", r.Errors[chain].Error()})
	}

	table.Render()

	return buf.String()
}

func describe(rec ViolationRecord) string {
	switch {
	case rec.Role != "":
		return fmt.Sprintf("%s (%s of %s)", rec.Type, rec.Role, rec.Account)
	case rec.RemoteChain != "":
		return fmt.Sprintf("%s (%s)", rec.Type, rec.RemoteChain)
	case rec.Proxy != "":
		return fmt.Sprintf("%s (%s)", rec.Type, rec.Proxy)
	default:
		return rec.Type.String()
	}
}

func formatValue(v any) string {
	switch value := v.(type) {
	case string:
		if value == "" {
			return "<none>"
		}

		return value
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprint(value)
	}
}
