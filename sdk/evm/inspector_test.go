package evm_test

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartcontractkit/deploycheck/sdk"
	sdkerrors "github.com/smartcontractkit/deploycheck/sdk/errors"
	"github.com/smartcontractkit/deploycheck/sdk/evm"
	evm_mocks "github.com/smartcontractkit/deploycheck/sdk/evm/mocks"
	"github.com/smartcontractkit/deploycheck/types"
)

var (
	testAddress  = common.HexToAddress("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")
	testOwner    = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	testAdmin    = common.HexToAddress("0x0000000000000000000000000000000000000a0a")
	testProposer = common.HexToAddress("0x0000000000000000000000000000000000000001")
	testRouter   = common.HexToAddress("0x00000000000000000000000000000000000000f1")
	testCode     = []byte{0x60, 0x80, 0x60, 0x40, 0x52}

	testABI = func() abi.ABI {
		parsed, err := abi.JSON(strings.NewReader(evm.ContractABI))
		if err != nil {
			panic(err)
		}

		return parsed
	}()
)

func testContext() context.Context {
	return sdk.WithLogger(context.Background(), zap.NewNop().Sugar())
}

// expectView mocks a view call of method with args on testAddress returning outputs.
func expectView(t *testing.T, m *evm_mocks.ContractReader, method string, args []any, outputs ...any) {
	t.Helper()

	data, err := testABI.Pack(method, args...)
	require.NoError(t, err)
	ret, err := testABI.Methods[method].Outputs.Pack(outputs...)
	require.NoError(t, err)

	to := testAddress
	m.EXPECT().CallContract(mock.Anything, ethereum.CallMsg{To: &to, Data: data}, mock.Anything).
		Return(ret, nil).Once()
}

func TestInspector_ReadState(t *testing.T) {
	t.Parallel()

	delay := uint64(86400)
	routerWord := common.LeftPadBytes(testRouter.Bytes(), 32)

	tests := []struct {
		name     string
		expected types.ExpectedState
		setup    func(t *testing.T, m *evm_mocks.ContractReader)
		want     types.ObservedState
		wantErr  string
	}{
		{
			name:     "not deployed",
			expected: types.ExpectedState{Contract: "router", Address: testAddress.Hex(), Owner: testOwner.Hex()},
			setup: func(t *testing.T, m *evm_mocks.ContractReader) {
				t.Helper()
				m.EXPECT().CodeAt(mock.Anything, testAddress, mock.Anything).Return([]byte{}, nil).Once()
			},
			want: types.ObservedState{Contract: "router", Address: testAddress.Hex()},
		},
		{
			name:     "only declared properties are read",
			expected: types.ExpectedState{Contract: "router", Address: testAddress.Hex()},
			setup: func(t *testing.T, m *evm_mocks.ContractReader) {
				t.Helper()
				m.EXPECT().CodeAt(mock.Anything, testAddress, mock.Anything).Return(testCode, nil).Once()
			},
			want: types.ObservedState{Contract: "router", Address: testAddress.Hex(), Deployed: true},
		},
		{
			name: "every property",
			expected: types.ExpectedState{
				Contract: "router",
				Address:  testAddress.Hex(),
				Bytecode: &types.BytecodeExpectation{Hash: "0x01"},
				Owner:    testOwner.Hex(),
				Proxy:    &types.ProxyExpectation{Admin: testAdmin.Hex()},
				Timelock: &types.TimelockExpectation{MinDelay: &delay},
				Roles: []types.RoleAssignment{
					{Role: "PROPOSER_ROLE", Account: testProposer.Hex()},
					{Role: evm.DefaultAdminRole, Account: testProposer.Hex(), Revoked: true},
				},
				RemoteRouters: map[types.ChainName]string{
					"fuji":   testRouter.Hex(),
					"mumbai": testRouter.Hex(),
				},
			},
			setup: func(t *testing.T, m *evm_mocks.ContractReader) {
				t.Helper()
				m.EXPECT().CodeAt(mock.Anything, testAddress, mock.Anything).Return(testCode, nil).Once()
				expectView(t, m, "owner", nil, testOwner)
				m.EXPECT().StorageAt(mock.Anything, testAddress, evm.AdminSlot, mock.Anything).
					Return(common.LeftPadBytes(testAdmin.Bytes(), 32), nil).Once()
				expectView(t, m, "getMinDelay", nil, new(big.Int).SetUint64(3600))
				expectView(t, m, "hasRole", []any{[32]byte(evm.RoleID("PROPOSER_ROLE")), testProposer}, true)
				expectView(t, m, "hasRole", []any{[32]byte{}, testProposer}, true)
				expectView(t, m, "routers", []any{uint32(43113)}, [32]byte(routerWord))
				expectView(t, m, "routers", []any{uint32(80001)}, [32]byte{})
			},
			want: types.ObservedState{
				Contract:                 "router",
				Address:                  testAddress.Hex(),
				Deployed:                 true,
				BytecodeHash:             evm.Fingerprint(testCode),
				MetadataFreeBytecodeHash: evm.Fingerprint(testCode),
				Owner:                    testOwner.Hex(),
				ProxyAdmin:               testAdmin.Hex(),
				TimelockDelay:            3600,
				Roles: []types.RoleMembership{
					{Role: "PROPOSER_ROLE", Account: testProposer.Hex(), Member: true},
					{Role: evm.DefaultAdminRole, Account: testProposer.Hex(), Member: true},
				},
				RemoteRouters: map[types.ChainName]string{
					"fuji":   testRouter.Hex(),
					"mumbai": "",
				},
			},
		},
		{
			name:     "error: invalid address",
			expected: types.ExpectedState{Contract: "router", Address: "not-an-address"},
			setup:    func(t *testing.T, m *evm_mocks.ContractReader) { t.Helper() },
			wantErr:  `invalid address for router: "not-an-address"`,
		},
		{
			name:     "error: code read failed",
			expected: types.ExpectedState{Contract: "router", Address: testAddress.Hex()},
			setup: func(t *testing.T, m *evm_mocks.ContractReader) {
				t.Helper()
				m.EXPECT().CodeAt(mock.Anything, testAddress, mock.Anything).
					Return(nil, errors.New("connection refused")).Once()
			},
			wantErr: "failed to read code of " + testAddress.Hex() + ": connection refused",
		},
		{
			name:     "error: owner call reverted",
			expected: types.ExpectedState{Contract: "router", Address: testAddress.Hex(), Owner: testOwner.Hex()},
			setup: func(t *testing.T, m *evm_mocks.ContractReader) {
				t.Helper()
				m.EXPECT().CodeAt(mock.Anything, testAddress, mock.Anything).Return(testCode, nil).Once()
				m.EXPECT().CallContract(mock.Anything, mock.Anything, mock.Anything).
					Return(nil, errors.New("execution reverted")).Once()
			},
			wantErr: "failed to read owner of " + testAddress.Hex() + ": execution reverted",
		},
		{
			name: "error: unknown remote domain",
			expected: types.ExpectedState{
				Contract:      "router",
				Address:       testAddress.Hex(),
				RemoteRouters: map[types.ChainName]string{"unknownchain": testRouter.Hex()},
			},
			setup: func(t *testing.T, m *evm_mocks.ContractReader) {
				t.Helper()
				m.EXPECT().CodeAt(mock.Anything, testAddress, mock.Anything).Return(testCode, nil).Once()
			},
			wantErr: "no domain id known for chain unknownchain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := evm_mocks.NewContractReader(t)
			tt.setup(t, client)

			inspector := evm.NewInspector(client, evm.WithDomains(map[types.ChainName]uint32{
				"fuji":   43113,
				"mumbai": 80001,
			}))

			got, err := inspector.ReadState(testContext(), tt.expected)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Empty(t, cmp.Diff(tt.want, got))
		})
	}
}

func TestInspector_ReadState_ReadErrorWrapsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("timeout")
	client := evm_mocks.NewContractReader(t)
	client.EXPECT().CodeAt(mock.Anything, testAddress, mock.Anything).Return(nil, cause).Once()

	_, err := evm.NewInspector(client).ReadState(testContext(), types.ExpectedState{
		Contract: "router",
		Address:  testAddress.Hex(),
	})

	var readErr *sdkerrors.ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, "code", readErr.Property)
	require.ErrorIs(t, err, cause)
}

func TestInspector_VerifyChainID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(m *evm_mocks.ContractReader)
		wantErr string
	}{
		{
			name: "matching chain",
			setup: func(m *evm_mocks.ContractReader) {
				m.EXPECT().ChainID(mock.Anything).Return(big.NewInt(43113), nil).Once()
			},
		},
		{
			name: "wrong chain",
			setup: func(m *evm_mocks.ContractReader) {
				m.EXPECT().ChainID(mock.Anything).Return(big.NewInt(1), nil).Once()
			},
			wantErr: "invalid chain ID for fuji: expected 43113, got 1",
		},
		{
			name: "rpc failure",
			setup: func(m *evm_mocks.ContractReader) {
				m.EXPECT().ChainID(mock.Anything).Return(nil, errors.New("dial tcp")).Once()
			},
			wantErr: "failed to get chain ID of fuji: dial tcp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := evm_mocks.NewContractReader(t)
			tt.setup(client)

			err := evm.NewInspector(client).VerifyChainID(testContext(), "fuji", 43113)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
