// Package config loads the expected deployment of an environment and assembles it into the
// per-chain expected state consumed by the checker.
package config

import (
	"github.com/smartcontractkit/deploycheck/types"
)

// EnvConfig is the expected deployment of an environment.
type EnvConfig struct {
	// Environment names the chain set, e.g. "testnet3".
	Environment string `json:"environment" validate:"required"`
	// Owner is the default owner of every Ownable contract.
	Owner string `json:"owner,omitempty"`
	// BytecodePolicy selects the fingerprint compared by the bytecode check.
	BytecodePolicy string `json:"bytecodePolicy,omitempty" validate:"omitempty,oneof=exact ignore-metadata"`

	Chains  map[types.ChainName]ChainConfig `json:"chains,omitempty" validate:"dive"`
	Routers *RoutersConfig                  `json:"routers,omitempty"`
}

// ChainConfig is the expected deployment on a single chain.
type ChainConfig struct {
	// Owner overrides the environment owner on this chain.
	Owner     string           `json:"owner,omitempty"`
	Contracts []ContractConfig `json:"contracts,omitempty" validate:"dive"`
}

// ContractConfig is the expected state of a governed contract.
type ContractConfig struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`

	Bytecode *types.BytecodeExpectation `json:"bytecode,omitempty"`
	// Owner overrides the chain owner for this contract.
	Owner string `json:"owner,omitempty"`
	// Ownable is false for contracts without an owner. Contracts are Ownable by default.
	Ownable *bool `json:"ownable,omitempty"`

	Proxy    *types.ProxyExpectation `json:"proxy,omitempty"`
	Timelock *TimelockConfig         `json:"timelock,omitempty"`

	Roles         []types.RoleAssignment     `json:"roles,omitempty"`
	RemoteRouters map[types.ChainName]string `json:"remoteRouters,omitempty"`
}

// TimelockConfig is the expected configuration of a timelock controller.
type TimelockConfig struct {
	// MinDelay is written either as a duration string ("24h") or as seconds (86400).
	MinDelay *types.Duration `json:"minDelay,omitempty"`
}

// RoutersConfig declares a router application deployed to many chains. Every router is expected
// to be enrolled with the router of every other chain.
type RoutersConfig struct {
	Name      string                     `json:"name" validate:"required"`
	Addresses map[types.ChainName]string `json:"addresses" validate:"required,min=1,dive,required"`
	// ChainsToSkip are left out of the router mesh.
	ChainsToSkip []types.ChainName          `json:"chainsToSkip,omitempty"`
	Bytecode     *types.BytecodeExpectation `json:"bytecode,omitempty"`
}

func (c ContractConfig) ownable() bool {
	return c.Ownable == nil || *c.Ownable
}
