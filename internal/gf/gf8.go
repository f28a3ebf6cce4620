package gf

// aesPoly is the AES reduction polynomial x^8 + x^4 + x^3 + x + 1 with the
// leading term dropped (it is applied after the shift out of the high bit).
const aesPoly = 0x1b

// Mul8 returns the product of a and b in GF(2^8) modulo the AES polynomial.
// Russian-peasant multiplication: conditionally accumulate, double a, halve b.
func Mul8(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		carry := a & 0x80
		a <<= 1
		if carry != 0 {
			a ^= aesPoly
		}
		b >>= 1
	}
	return p
}

// Double8 returns 2*a in GF(2^8), the xtime operation used by MixColumns.
func Double8(a byte) byte {
	return Mul8(a, 2)
}
