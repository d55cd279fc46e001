package solana

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Upgradeable loader account discriminators.
const (
	programAccountType     uint32 = 2
	programDataAccountType uint32 = 3

	// programDataHeaderSize is the fixed size of the ProgramData header preceding the program code.
	programDataHeaderSize = 45
)

// programAccount is the state of an executable account owned by the upgradeable loader.
type programAccount struct {
	DataType    uint32
	ProgramData solana.PublicKey
}

// programDataHeader is the header of the account holding an upgradeable program's code.
type programDataHeader struct {
	DataType         uint32
	Slot             uint64
	UpgradeAuthority *solana.PublicKey `bin:"optional"`
}

func decodeProgramAccount(data []byte) (solana.PublicKey, error) {
	var account programAccount
	if err := bin.UnmarshalBorsh(&account, data); err != nil {
		return solana.PublicKey{}, fmt.Errorf("unable to unmarshal program account: %w", err)
	}
	if account.DataType != programAccountType {
		return solana.PublicKey{}, fmt.Errorf("unexpected program account type %d", account.DataType)
	}

	return account.ProgramData, nil
}

// decodeProgramData returns the upgrade authority (nil for immutable programs) and the program
// code with the trailing zero padding of the account removed.
func decodeProgramData(data []byte) (*solana.PublicKey, []byte, error) {
	if len(data) < programDataHeaderSize {
		return nil, nil, fmt.Errorf("program data too short: %d bytes", len(data))
	}

	var header programDataHeader
	if err := bin.UnmarshalBorsh(&header, data); err != nil {
		return nil, nil, fmt.Errorf("unable to unmarshal program data: %w", err)
	}
	if header.DataType != programDataAccountType {
		return nil, nil, fmt.Errorf("unexpected program data account type %d", header.DataType)
	}

	return header.UpgradeAuthority, bytes.TrimRight(data[programDataHeaderSize:], "\x00"), nil
}

// Fingerprint returns the sha256 hash of program code as 0x-prefixed hex.
func Fingerprint(code []byte) string {
	sum := sha256.Sum256(code)

	return fmt.Sprintf("0x%x", sum)
}

func isUpgradeable(account *rpc.Account) bool {
	return account.Owner.Equals(solana.BPFLoaderUpgradeableProgramID)
}
