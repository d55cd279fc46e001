package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/deploycheck/types"
)

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    Format
		wantErr string
	}{
		{path: "env.json", want: FormatJSON},
		{path: "env.yaml", want: FormatYAML},
		{path: "dir/env.YML", want: FormatYAML},
		{path: "env.toml", want: FormatTOML},
		{path: "env.ini", wantErr: `unsupported config file extension: ".ini"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := FormatFromPath(tt.path)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFile_YAML(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFile("testdata/testnet3.yaml")
	require.NoError(t, err)

	assert.Equal(t, "testnet3", cfg.Environment)
	assert.Equal(t, "ignore-metadata", cfg.BytecodePolicy)
	require.Len(t, cfg.Chains["alfajores"].Contracts, 2)

	timelock := cfg.Chains["alfajores"].Contracts[1]
	require.NotNil(t, timelock.Timelock)
	require.NotNil(t, timelock.Timelock.MinDelay)
	assert.Equal(t, 24*time.Hour, timelock.Timelock.MinDelay.Duration)
	assert.False(t, timelock.ownable())
	assert.True(t, timelock.Roles[1].Revoked)

	require.NotNil(t, cfg.Routers)
	assert.Equal(t, "helloworld", cfg.Routers.Name)
	assert.Equal(t, []types.ChainName{"goerli"}, cfg.Routers.ChainsToSkip)
	assert.Len(t, cfg.Routers.Addresses, 4)
}

func TestLoadFile_TOML(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFile("testdata/testnet3.toml")
	require.NoError(t, err)

	contracts := cfg.Chains["fuji"].Contracts
	require.Len(t, contracts, 1)
	assert.Equal(t, "timelock", contracts[0].Name)
	delay, ok := contracts[0].Timelock.MinDelay.WholeSeconds()
	require.True(t, ok)
	assert.Equal(t, uint64(86400), delay)
}

func TestLoadFile_JSON(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFile("testdata/testnet3.json")
	require.NoError(t, err)

	contracts := cfg.Chains["mumbai"].Contracts
	require.Len(t, contracts, 1)
	assert.Equal(t, "0x01", contracts[0].Bytecode.Hash)
	assert.Nil(t, cfg.Routers)
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile("testdata/absent.yaml")
	require.ErrorContains(t, err, "failed to read config file")
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		format      Format
		give        string
		wantErr     string
		wantInvalid bool
	}{
		{
			name:        "missing environment",
			format:      FormatYAML,
			give:        "owner: \"0x01\"\n",
			wantInvalid: true,
		},
		{
			name:        "unknown top level key",
			format:      FormatJSON,
			give:        `{"environment":"testnet3","mainnet":true}`,
			wantInvalid: true,
		},
		{
			name:        "contract without address",
			format:      FormatYAML,
			give:        "environment: testnet3\nchains:\n  fuji:\n    contracts:\n      - name: mailbox\n",
			wantInvalid: true,
		},
		{
			name:        "unknown bytecode policy",
			format:      FormatJSON,
			give:        `{"environment":"testnet3","bytecodePolicy":"fuzzy"}`,
			wantInvalid: true,
		},
		{
			name:        "routers without addresses",
			format:      FormatTOML,
			give:        "environment = \"testnet3\"\n[routers]\nname = \"helloworld\"\n",
			wantInvalid: true,
		},
		{
			name:    "negative delay",
			format:  FormatJSON,
			give:    `{"environment":"testnet3","chains":{"fuji":{"contracts":[{"name":"t","address":"0x01","timelock":{"minDelay":-5}}]}}}`,
			wantErr: "invalid duration seconds: -5",
		},
		{
			name:        "fractional delay",
			format:      FormatYAML,
			give:        "environment: testnet3\nchains:\n  fuji:\n    contracts:\n      - name: t\n        address: \"0x01\"\n        timelock:\n          minDelay: 1.5s\n",
			wantErr:     "chains.fuji.contracts[0].timelock.minDelay: 1.5s is not a whole number of seconds",
			wantInvalid: true,
		},
		{
			name:    "malformed YAML",
			format:  FormatYAML,
			give:    "environment: [",
			wantErr: "failed to parse YAML config",
		},
		{
			name:    "malformed JSON",
			format:  FormatJSON,
			give:    "{",
			wantErr: "invalid JSON config",
		},
		{
			name:    "unsupported format",
			format:  Format("ini"),
			give:    "environment=testnet3",
			wantErr: `unsupported config format: "ini"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.give), tt.format)
			require.Error(t, err)
			if tt.wantInvalid {
				require.ErrorIs(t, err, ErrInvalidConfig)
			}
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
