package permit

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"ZKWill-Oracle/internal/keccak"
)

// Domain identifies the EIP-712 signing domain. An empty Version selects the
// three-field domain type without a version string, which is what the
// deployed Permit2 contract uses.
type Domain struct {
	Name              string
	Version           string
	ChainID           *uint256.Int
	VerifyingContract common.Address
}

var (
	domainTypeHash = keccak.Sum256([]byte(
		"EIP712Domain(string name,string version,uint256 chainId,address verifyingContract)"))
	domainTypeHashNoVersion = keccak.Sum256([]byte(
		"EIP712Domain(string name,uint256 chainId,address verifyingContract)"))
)

// Separator hashes the domain into its 32-byte separator.
func (d Domain) Separator() [32]byte {
	nameHash := keccak.Sum256([]byte(d.Name))

	var buf []byte
	if d.Version == "" {
		buf = make([]byte, 0, 4*32)
		buf = append(buf, domainTypeHashNoVersion[:]...)
		buf = append(buf, nameHash[:]...)
	} else {
		versionHash := keccak.Sum256([]byte(d.Version))
		buf = make([]byte, 0, 5*32)
		buf = append(buf, domainTypeHash[:]...)
		buf = append(buf, nameHash[:]...)
		buf = append(buf, versionHash[:]...)
	}
	buf = appendUintWord(buf, d.ChainID)
	buf = appendAddressWord(buf, d.VerifyingContract)
	return keccak.Sum256(buf)
}

// HashTypedData produces the final signable digest,
// keccak256(0x19 0x01 || domainSeparator || structHash).
func HashTypedData(domainSeparator, structHash [32]byte) [32]byte {
	buf := make([]byte, 0, 2+2*32)
	buf = append(buf, 0x19, 0x01)
	buf = append(buf, domainSeparator[:]...)
	buf = append(buf, structHash[:]...)
	return keccak.Sum256(buf)
}

// appendUintWord appends a uint256 as a 32-byte big-endian word. A nil value
// encodes as zero.
func appendUintWord(buf []byte, v *uint256.Int) []byte {
	var word [32]byte
	if v != nil {
		word = v.Bytes32()
	}
	return append(buf, word[:]...)
}

// appendAddressWord left-pads a 20-byte address to a 32-byte word.
func appendAddressWord(buf []byte, addr common.Address) []byte {
	var word [32]byte
	copy(word[12:], addr[:])
	return append(buf, word[:]...)
}
