package deploycheck

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/smartcontractkit/deploycheck/types"
)

// CheckAll checks every chain in chains and merges the results into a Report.
//
// Chains are checked independently and in parallel. A chain whose check fails is recorded in
// Report.Errors and omitted from Report.Violations; every other chain appears in
// Report.Violations, with an empty slice when it checked clean.
//
// If ctx is cancelled, the chains checked so far are returned along with the context error.
func (c *Checker) CheckAll(
	ctx context.Context,
	chains []types.ChainName,
	expectedByChain map[types.ChainName][]types.ExpectedState,
	observedByChain map[types.ChainName][]types.ObservedState,
) (*Report, error) {
	chains = dedupe(chains)

	type result struct {
		done       bool
		violations []Violation
		err        error
	}
	results := make([]result, len(chains))

	g, gctx := errgroup.WithContext(ctx)
	if c.concurrency > 0 {
		g.SetLimit(c.concurrency)
	}
	for i, chain := range chains {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			expected, ok := expectedByChain[chain]
			if !ok {
				results[i] = result{done: true, err: NewMalformedExpectedConfigError(chain, "", "contracts")}
				return nil
			}

			violations, err := c.CheckChain(chain, expected, observedByChain[chain])
			results[i] = result{done: true, violations: violations, err: err}

			return nil
		})
	}
	waitErr := g.Wait()

	report := NewReport()
	for i, chain := range chains {
		r := results[i]
		if !r.done {
			continue
		}
		if r.err != nil {
			report.Flag(chain, r.err)
			continue
		}
		report.Violations[chain] = r.violations
	}

	return report, waitErr
}

// CheckAll checks every chain using exact bytecode fingerprints. See Checker.CheckAll.
func CheckAll(
	ctx context.Context,
	chains []types.ChainName,
	expectedByChain map[types.ChainName][]types.ExpectedState,
	observedByChain map[types.ChainName][]types.ObservedState,
) (*Report, error) {
	return defaultChecker.CheckAll(ctx, chains, expectedByChain, observedByChain)
}

func dedupe(chains []types.ChainName) []types.ChainName {
	seen := make(map[types.ChainName]struct{}, len(chains))
	out := make([]types.ChainName, 0, len(chains))
	for _, c := range chains {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out
}
