package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/kaptinlin/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/smartcontractkit/deploycheck/types"
)

//go:embed schema.json
var schemaJSON []byte

// Format is the encoding of an environment file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath infers the format of a file from its extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config file extension: %q", ext)
	}
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.NewCompiler().Compile(schemaJSON)
	})

	return schema, schemaErr
}

// LoadFile reads and parses an environment file.
func LoadFile(path string) (*EnvConfig, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data, format)
}

// Parse decodes an environment file. The document is converted to JSON, validated against the
// environment schema, decoded and then validated field by field.
func Parse(data []byte, format Format) (*EnvConfig, error) {
	raw, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}

	s, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to compile config schema: %w", err)
	}
	if result := s.ValidateJSON(raw); !result.IsValid() {
		return nil, NewSchemaError(result.Errors)
	}

	var cfg EnvConfig
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}
	if err := cfg.checkDelays(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// checkDelays rejects timelock delays that are not a whole number of seconds, since on-chain
// delays are kept in seconds.
func (c *EnvConfig) checkDelays() error {
	for _, chain := range types.SortedChainNames(c.Chains) {
		for i, contract := range c.Chains[chain].Contracts {
			if contract.Timelock == nil || contract.Timelock.MinDelay == nil {
				continue
			}
			if _, ok := contract.Timelock.MinDelay.WholeSeconds(); !ok {
				return fmt.Errorf("%w: chains.%s.contracts[%d].timelock.minDelay: %s is not a whole number of seconds",
					ErrInvalidConfig, chain, i, contract.Timelock.MinDelay)
			}
		}
	}

	return nil
}

func toJSON(data []byte, format Format) ([]byte, error) {
	var doc map[string]any
	switch format {
	case FormatJSON:
		if !json.Valid(data) {
			return nil, errors.New("invalid JSON config")
		}

		return data, nil
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %q", format)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert config to JSON: %w", err)
	}

	return raw, nil
}
