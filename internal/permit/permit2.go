package permit

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"ZKWill-Oracle/internal/keccak"
)

// TokenPermissions grants a spender up to Amount of one ERC-20 token.
type TokenPermissions struct {
	Token  common.Address
	Amount *uint256.Int
}

// PermitBatchTransferFrom authorizes a batch of token transfers to a single
// spender, bound to a nonce and a deadline.
type PermitBatchTransferFrom struct {
	Permitted []TokenPermissions
	Spender   common.Address
	Nonce     *uint256.Int
	Deadline  *uint256.Int
}

// Typehashes per EIP-712 encodeType: the batch type string carries the
// referenced TokenPermissions definition appended after it.
var (
	tokenPermissionsTypeHash = keccak.Sum256([]byte(
		"TokenPermissions(address token,uint256 amount)"))
	permitBatchTypeHash = keccak.Sum256([]byte(
		"PermitBatchTransferFrom(TokenPermissions[] permitted,address spender,uint256 nonce,uint256 deadline)" +
			"TokenPermissions(address token,uint256 amount)"))
)

// StructHash hashes a single token permission entry.
func (p TokenPermissions) StructHash() [32]byte {
	buf := make([]byte, 0, 3*32)
	buf = append(buf, tokenPermissionsTypeHash[:]...)
	buf = appendAddressWord(buf, p.Token)
	buf = appendUintWord(buf, p.Amount)
	return keccak.Sum256(buf)
}

// StructHash hashes the whole batch. The permitted array contributes the
// keccak256 of its concatenated per-element struct hashes; an empty batch
// contributes the hash of the empty string.
func (p PermitBatchTransferFrom) StructHash() [32]byte {
	elems := make([]byte, 0, len(p.Permitted)*32)
	for _, tp := range p.Permitted {
		h := tp.StructHash()
		elems = append(elems, h[:]...)
	}
	permittedHash := keccak.Sum256(elems)

	buf := make([]byte, 0, 5*32)
	buf = append(buf, permitBatchTypeHash[:]...)
	buf = append(buf, permittedHash[:]...)
	buf = appendAddressWord(buf, p.Spender)
	buf = appendUintWord(buf, p.Nonce)
	buf = appendUintWord(buf, p.Deadline)
	return keccak.Sum256(buf)
}

// Digest combines the batch struct hash with the domain separator into the
// signable EIP-712 digest.
func (p PermitBatchTransferFrom) Digest(d Domain) [32]byte {
	return HashTypedData(d.Separator(), p.StructHash())
}
