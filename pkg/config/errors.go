package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched by every error reporting an environment file that does not match
// the environment schema.
var ErrInvalidConfig = errors.New("invalid config")

// SchemaError reports the schema violations of an environment file.
type SchemaError struct {
	Details string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("config does not match schema: %s", e.Details)
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func NewSchemaError(details any) *SchemaError {
	return &SchemaError{Details: fmt.Sprint(details)}
}
