package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainName_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, ChainName("fuji").Validate())
	require.ErrorIs(t, ChainName("").Validate(), ErrEmptyChainName)
}

func TestSortedChainNames(t *testing.T) {
	t.Parallel()

	got := SortedChainNames(map[ChainName]int{
		"mumbai":    1,
		"alfajores": 2,
		"fuji":      3,
	})

	assert.Equal(t, []ChainName{"alfajores", "fuji", "mumbai"}, got)
	assert.Empty(t, SortedChainNames(map[ChainName]int{}))
}
