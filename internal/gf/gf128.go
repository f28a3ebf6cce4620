package gf

import "encoding/binary"

// ghashPolyHi is the GHASH reduction term R = 11100001 || 0^120, expressed on
// the high 64-bit half of the reflected 128-bit element.
const ghashPolyHi = 0xe100000000000000

// Mul128 multiplies x and y in GF(2^128) under the GHASH polynomial.
//
// GHASH uses the reflected bit convention: bit 0 of byte 0 is the most
// significant coefficient, so the multiplicative identity is the block
// 0x80 00 .. 00, not 0x00 .. 01. Operands and result are 16-byte blocks in
// network order; the walk over x runs from that most significant coefficient
// downwards while y is repeatedly divided by the formal variable.
func Mul128(x, y [16]byte) [16]byte {
	xHi := binary.BigEndian.Uint64(x[0:8])
	xLo := binary.BigEndian.Uint64(x[8:16])
	vHi := binary.BigEndian.Uint64(y[0:8])
	vLo := binary.BigEndian.Uint64(y[8:16])

	var zHi, zLo uint64
	for i := 0; i < 128; i++ {
		var bit uint64
		if i < 64 {
			bit = (xHi >> (63 - i)) & 1
		} else {
			bit = (xLo >> (127 - i)) & 1
		}
		if bit != 0 {
			zHi ^= vHi
			zLo ^= vLo
		}

		// v = v * x^-1, reducing when the low coefficient falls off.
		lsb := vLo & 1
		vLo = (vLo >> 1) | (vHi << 63)
		vHi >>= 1
		if lsb != 0 {
			vHi ^= ghashPolyHi
		}
	}

	var out [16]byte
	binary.BigEndian.PutUint64(out[0:8], zHi)
	binary.BigEndian.PutUint64(out[8:16], zLo)
	return out
}
