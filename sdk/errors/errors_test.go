package sdkerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err      error
		expected string
	}{
		{NewInvalidChainIDError("fuji", 43113, 1), "invalid chain ID for fuji: expected 43113, got 1"},
		{NewUnsupportedReadError("solana", "timelock delay"), "reading timelock delay is not supported on solana chains"},
		{NewReadError("owner", "0xabc", errors.New("execution reverted")), "failed to read owner of 0xabc: execution reverted"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.err.Error())
	}
}

func TestReadError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("timeout")
	err := NewReadError("owner", "0xabc", cause)

	assert.ErrorIs(t, err, cause)
}
