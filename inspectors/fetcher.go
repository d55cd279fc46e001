package inspectors

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/smartcontractkit/deploycheck/sdk"
	"github.com/smartcontractkit/deploycheck/types"
)

const (
	defaultConcurrency = 8
	defaultReadTimeout = 30 * time.Second
)

// Fetcher reads the observed state of every expected contract across chains.
type Fetcher struct {
	inspectors  map[types.ChainName]sdk.Inspector
	concurrency int
	readTimeout time.Duration
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithConcurrency limits the number of reads in flight.
func WithConcurrency(n int) FetcherOption {
	return func(f *Fetcher) {
		f.concurrency = n
	}
}

// WithReadTimeout bounds the time spent reading a single contract.
func WithReadTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.readTimeout = d
	}
}

// NewFetcher creates a Fetcher reading through the given per-chain inspectors.
func NewFetcher(inspectors map[types.ChainName]sdk.Inspector, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		inspectors:  inspectors,
		concurrency: defaultConcurrency,
		readTimeout: defaultReadTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch reads every expected contract and returns the observed state per chain, in the order of
// the expected contracts. A chain with a failed read is returned in the error map only, with
// the first failure.
func (f *Fetcher) Fetch(
	ctx context.Context, expectedByChain map[types.ChainName][]types.ExpectedState,
) (map[types.ChainName][]types.ObservedState, map[types.ChainName]error) {
	lggr := sdk.LoggerFrom(ctx)

	observed := make(map[types.ChainName][]types.ObservedState, len(expectedByChain))
	errs := make(map[types.ChainName]error)
	var mu sync.Mutex

	var g errgroup.Group
	if f.concurrency > 0 {
		g.SetLimit(f.concurrency)
	}

	chains := types.SortedChainNames(expectedByChain)
	for _, chain := range chains {
		if _, ok := f.inspectors[chain]; !ok {
			errs[chain] = fmt.Errorf("no inspector for chain %s", chain)
		}
	}

	// errs is shared with the readers from here on and only accessed under mu.
	for _, chain := range chains {
		inspector, ok := f.inspectors[chain]
		if !ok {
			continue
		}
		expected := expectedByChain[chain]

		states := make([]types.ObservedState, len(expected))
		observed[chain] = states

		for i, e := range expected {
			g.Go(func() error {
				readCtx, cancel := context.WithTimeout(ctx, f.readTimeout)
				defer cancel()

				state, err := inspector.ReadState(readCtx, e)
				if err != nil {
					lggr.Warnf("failed to read %s on %s: %v", e.Contract, chain, err)

					mu.Lock()
					if _, seen := errs[chain]; !seen {
						errs[chain] = fmt.Errorf("read %s: %w", e.Contract, err)
					}
					mu.Unlock()

					return nil
				}
				states[i] = state

				return nil
			})
		}
	}
	_ = g.Wait()

	for chain := range errs {
		delete(observed, chain)
	}

	return observed, errs
}
