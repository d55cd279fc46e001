package deploycheck

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
		{
			NewMalformedExpectedConfigError("fuji", "timelock", "timelock.minDelay"),
			`malformed expected config: chain "fuji" contract "timelock": missing timelock.minDelay`,
		},
		{
			NewMalformedExpectedConfigError("fuji", "", "contracts"),
			`malformed expected config: chain "fuji": missing contracts`,
		},
		{
			NewMissingObservedStateError("fuji", "router"),
			`missing observed state for contract "router" on chain "fuji"`,
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.err.Error())
	}
}

func TestMalformedExpectedConfigError_Is(t *testing.T) {
	t.Parallel()

	var err error = NewMalformedExpectedConfigError("fuji", "router", "owner")

	assert.ErrorIs(t, err, ErrMalformedExpectedConfig)
	assert.NotErrorIs(t, err, errors.New("malformed expected config"))

	var target *MalformedExpectedConfigError
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, "owner", target.Field)
}
