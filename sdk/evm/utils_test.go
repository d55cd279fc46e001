package evm

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
)

func TestAdminSlot(t *testing.T) {
	t.Parallel()

	hash := crypto.Keccak256Hash([]byte("eip1967.proxy.admin")).Big()
	hash.Sub(hash, common.Big1)

	assert.Equal(t, common.BigToHash(hash), AdminSlot)
}

func Test_slotToAddress(t *testing.T) {
	t.Parallel()

	admin := common.HexToAddress("0x4e4D563e2cBFC35c4BC16003685443Fae2FA702f")

	tests := []struct {
		name string
		give []byte
		want common.Address
	}{
		{name: "storage word", give: common.LeftPadBytes(admin.Bytes(), 32), want: admin},
		{name: "address bytes", give: admin.Bytes(), want: admin},
		{name: "empty slot", give: make([]byte, 32), want: common.Address{}},
		{name: "nil", give: nil, want: common.Address{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, slotToAddress(tt.give))
		})
	}
}
