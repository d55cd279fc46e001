package chainsmetadata

import (
	"errors"
	"fmt"
	"maps"

	"github.com/smartcontractkit/deploycheck/types"
)

// ErrUnknownChain is returned when a chain is not in a Registry.
var ErrUnknownChain = errors.New("unknown chain")

// UnknownChainError names the chain missing from a Registry.
type UnknownChainError struct {
	Chain types.ChainName
}

func (e *UnknownChainError) Error() string {
	return fmt.Sprintf("unknown chain: %s", e.Chain)
}

func (e *UnknownChainError) Is(target error) bool {
	return target == ErrUnknownChain
}

func NewUnknownChainError(chain types.ChainName) *UnknownChainError {
	return &UnknownChainError{Chain: chain}
}

// Registry is an immutable set of chain metadata keyed by chain name. It is safe for
// concurrent use.
type Registry struct {
	chains map[types.ChainName]Metadata
}

// NewRegistry creates a registry from the given chains. Names must be set and unique.
func NewRegistry(chains ...Metadata) (*Registry, error) {
	r := &Registry{chains: make(map[types.ChainName]Metadata, len(chains))}
	for _, m := range chains {
		if err := m.Name.Validate(); err != nil {
			return nil, fmt.Errorf("chain with id %d: %w", m.ID, err)
		}
		if _, ok := r.chains[m.Name]; ok {
			return nil, fmt.Errorf("duplicate chain: %s", m.Name)
		}
		r.chains[m.Name] = m.Clone()
	}

	return r, nil
}

// Default returns a registry of every known chain.
func Default() *Registry {
	r, err := NewRegistry(all()...)
	if err != nil {
		panic(err)
	}

	return r
}

// Get returns a copy of the metadata of a chain.
func (r *Registry) Get(name types.ChainName) (Metadata, bool) {
	m, ok := r.chains[name]
	return m.Clone(), ok
}

// MustGet returns the metadata of a chain, panicking if the chain is unknown.
func (r *Registry) MustGet(name types.ChainName) Metadata {
	m, ok := r.chains[name]
	if !ok {
		panic(NewUnknownChainError(name))
	}

	return m.Clone()
}

// Names returns every chain name in the registry, sorted.
func (r *Registry) Names() []types.ChainName {
	return types.SortedChainNames(r.chains)
}

// Len returns the number of chains in the registry.
func (r *Registry) Len() int {
	return len(r.chains)
}

// Subset returns a registry holding only the named chains.
func (r *Registry) Subset(names ...types.ChainName) (*Registry, error) {
	sub := &Registry{chains: make(map[types.ChainName]Metadata, len(names))}
	for _, name := range names {
		m, ok := r.chains[name]
		if !ok {
			return nil, NewUnknownChainError(name)
		}
		sub.chains[name] = m.Clone()
	}

	return sub, nil
}

// Domains returns the domain id of every chain.
func (r *Registry) Domains() map[types.ChainName]uint32 {
	domains := make(map[types.ChainName]uint32, len(r.chains))
	for name, m := range r.chains {
		domains[name] = m.ID
	}

	return domains
}

// All returns a copy of every chain's metadata.
func (r *Registry) All() map[types.ChainName]Metadata {
	chains := make(map[types.ChainName]Metadata, len(r.chains))
	for name, m := range r.chains {
		chains[name] = m.Clone()
	}

	return chains
}

// with returns a copy of the registry with m added or replaced.
func (r *Registry) with(m Metadata) *Registry {
	chains := maps.Clone(r.chains)
	chains[m.Name] = m.Clone()

	return &Registry{chains: chains}
}
