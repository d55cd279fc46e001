package deploycheck

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/deploycheck/types"
)

// ownedRouter returns matching expected and observed states for a router on a chain.
func ownedRouter(chain types.ChainName) (types.ExpectedState, types.ObservedState) {
	addr := fmt.Sprintf("0x%040x", len(chain))

	return types.ExpectedState{Contract: "router", Address: addr, Owner: ownerA},
		types.ObservedState{Contract: "router", Address: addr, Deployed: true, Owner: ownerA}
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	chains := []types.ChainName{"alfajores", "fuji", "mumbai", "bsctestnet", "goerli"}
	expected := make(map[types.ChainName][]types.ExpectedState)
	observed := make(map[types.ChainName][]types.ObservedState)
	for _, chain := range chains {
		e, o := ownedRouter(chain)
		if chain == "mumbai" {
			o.Owner = ownerB
		}
		expected[chain] = []types.ExpectedState{e}
		observed[chain] = []types.ObservedState{o}
	}

	report, err := NewChecker(WithConcurrency(2)).CheckAll(context.Background(), chains, expected, observed)
	require.NoError(t, err)
	require.Len(t, report.Violations, len(chains))
	assert.Empty(t, report.Errors)
	assert.Equal(t, 1, report.Count())
	assert.False(t, report.Clean())

	for _, chain := range chains {
		got, ok := report.Violations[chain]
		require.True(t, ok, "chain %s missing from report", chain)

		if chain != "mumbai" {
			assert.NotNil(t, got)
			assert.Empty(t, got, "chain %s", chain)

			continue
		}

		e := expected[chain][0]
		require.Empty(t, cmp.Diff([]Violation{
			OwnerViolation{
				ContractRef: ContractRef{Chain: chain, Contract: "router", Address: e.Address},
				Expected:    ownerA,
				Actual:      ownerB,
			},
		}, got))
	}
}

func TestCheckAll_AllClean(t *testing.T) {
	t.Parallel()

	e, o := ownedRouter("fuji")
	report, err := CheckAll(context.Background(),
		[]types.ChainName{"fuji"},
		map[types.ChainName][]types.ExpectedState{"fuji": {e}},
		map[types.ChainName][]types.ObservedState{"fuji": {o}},
	)
	require.NoError(t, err)
	assert.True(t, report.Clean())
	require.NoError(t, report.Err())
}

func TestCheckAll_ChainErrors(t *testing.T) {
	t.Parallel()

	fujiExpected, fujiObserved := ownedRouter("fuji")
	mumbaiExpected, _ := ownedRouter("mumbai")
	goerliExpected, goerliObserved := ownedRouter("goerli")
	goerliExpected.Timelock = &types.TimelockExpectation{}

	report, err := CheckAll(context.Background(),
		[]types.ChainName{"fuji", "mumbai", "goerli", "sepolia"},
		map[types.ChainName][]types.ExpectedState{
			"fuji":   {fujiExpected},
			"mumbai": {mumbaiExpected},
			"goerli": {goerliExpected},
		},
		map[types.ChainName][]types.ObservedState{
			"fuji":   {fujiObserved},
			"goerli": {goerliObserved},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, []types.ChainName{"fuji"}, types.SortedChainNames(report.Violations))
	assert.Equal(t, []types.ChainName{"goerli", "mumbai", "sepolia"}, types.SortedChainNames(report.Errors))
	assert.Equal(t, []types.ChainName{"fuji", "goerli", "mumbai", "sepolia"}, report.Chains())

	var missing *MissingObservedStateError
	require.ErrorAs(t, report.Errors["mumbai"], &missing)
	require.ErrorIs(t, report.Errors["goerli"], ErrMalformedExpectedConfig)
	require.ErrorIs(t, report.Errors["sepolia"], ErrMalformedExpectedConfig)

	err = report.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chain goerli:")
	assert.Contains(t, err.Error(), "chain sepolia:")
	assert.False(t, report.Clean())
}

func TestCheckAll_DuplicateChains(t *testing.T) {
	t.Parallel()

	e, o := ownedRouter("fuji")
	o.Owner = ownerB

	report, err := CheckAll(context.Background(),
		[]types.ChainName{"fuji", "fuji", "fuji"},
		map[types.ChainName][]types.ExpectedState{"fuji": {e}},
		map[types.ChainName][]types.ObservedState{"fuji": {o}},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Count())
}

func TestCheckAll_NoChains(t *testing.T) {
	t.Parallel()

	report, err := CheckAll(context.Background(), nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, report.Violations)
	assert.True(t, report.Clean())
}

func TestCheckAll_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e, o := ownedRouter("fuji")
	report, err := CheckAll(ctx,
		[]types.ChainName{"fuji"},
		map[types.ChainName][]types.ExpectedState{"fuji": {e}},
		map[types.ChainName][]types.ObservedState{"fuji": {o}},
	)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Empty(t, report.Violations)
}

func TestCheckAll_MatchesSequentialCheck(t *testing.T) {
	t.Parallel()

	chains := []types.ChainName{"alfajores", "fuji", "mumbai"}
	expected := make(map[types.ChainName][]types.ExpectedState)
	observed := make(map[types.ChainName][]types.ObservedState)
	for i, chain := range chains {
		e := fullExpected()
		o := matchingObserved()
		o.TimelockDelay = uint64(i)
		expected[chain] = []types.ExpectedState{e}
		observed[chain] = []types.ObservedState{o}
	}

	report, err := CheckAll(context.Background(), chains, expected, observed)
	require.NoError(t, err)

	for _, chain := range chains {
		want, err := Check(chain, expected[chain][0], observed[chain][0])
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(want, report.Violations[chain]))
	}
}
