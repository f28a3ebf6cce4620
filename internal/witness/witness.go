package witness

import (
	"encoding/binary"

	"github.com/holiman/uint256"

	"ZKWill-Oracle/internal/errors"
)

// BytesToBits expands data into 0/1 values, LSB-first within each byte, so
// bit i of the output is (data[i/8] >> (i%8)) & 1.
func BytesToBits(data []byte) []byte {
	out := make([]byte, len(data)*8)
	for i := range out {
		out[i] = data[i/8] >> (i % 8) & 1
	}
	return out
}

// BitsToBytes packs an LSB-first bit vector back into bytes. The length must
// be a multiple of 8 and every element 0 or 1.
func BitsToBytes(bits []byte) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, errors.Newf(errors.CodeInvalidInputShape, "bit vector length %d is not a multiple of 8", len(bits))
	}
	out := make([]byte, len(bits)/8)
	for i, bit := range bits {
		switch bit {
		case 0:
		case 1:
			out[i/8] |= 1 << (i % 8)
		default:
			return nil, errors.Newf(errors.CodeInvalidInputShape, "bit value %d at index %d is not 0 or 1", bit, i)
		}
	}
	return out, nil
}

// Limbs splits a 32-byte big-endian word into four 64-bit limbs, limb 0 least
// significant.
func Limbs(word [32]byte) [4]uint64 {
	var out [4]uint64
	for i := 0; i < 4; i++ {
		out[i] = binary.BigEndian.Uint64(word[32-8*(i+1):])
	}
	return out
}

// FromLimbs is the inverse of Limbs.
func FromLimbs(limbs [4]uint64) [32]byte {
	var out [32]byte
	for i := 0; i < 4; i++ {
		binary.BigEndian.PutUint64(out[32-8*(i+1):], limbs[i])
	}
	return out
}

// SplitUint256 returns the limbs of v in the same order as Limbs. A nil value
// splits to zero.
func SplitUint256(v *uint256.Int) [4]uint64 {
	if v == nil {
		return [4]uint64{}
	}
	return [4]uint64{v[0], v[1], v[2], v[3]}
}

// JoinUint256 rebuilds a uint256 from limbs.
func JoinUint256(limbs [4]uint64) *uint256.Int {
	return &uint256.Int{limbs[0], limbs[1], limbs[2], limbs[3]}
}
