package evm_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"

	"github.com/smartcontractkit/deploycheck/sdk/evm"
)

func TestStripMetadata(t *testing.T) {
	t.Parallel()

	runtime := hexutil.MustDecode("0x6080604052348015600f57600080fd5b50")
	metadataA := hexutil.MustDecode("0xa264697066735822" + "1220aaaa" + "64736f6c634300081c0033")
	metadataB := hexutil.MustDecode("0xa264697066735822" + "1220bbbb" + "64736f6c634300081c0033")

	tests := []struct {
		name string
		give []byte
		want []byte
	}{
		{
			name: "metadata trailer removed",
			give: append(append([]byte{}, runtime...), metadataA...),
			want: runtime,
		},
		{
			name: "no trailer",
			give: runtime,
			want: runtime,
		},
		{
			name: "empty",
			give: []byte{},
			want: []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, evm.StripMetadata(tt.give))
		})
	}

	t.Run("builds differing only in metadata share a metadata free fingerprint", func(t *testing.T) {
		t.Parallel()

		a := append(append([]byte{}, runtime...), metadataA...)
		b := append(append([]byte{}, runtime...), metadataB...)

		assert.NotEqual(t, evm.Fingerprint(a), evm.Fingerprint(b))
		assert.Equal(t, evm.MetadataFreeFingerprint(a), evm.MetadataFreeFingerprint(b))
	})
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	code := []byte{0x60, 0x80}

	assert.Equal(t, crypto.Keccak256Hash(code).Hex(), evm.Fingerprint(code))
	assert.Len(t, evm.Fingerprint(code), 66)
}
