// Package witness fixes the numeric conventions at the boundary between the
// byte-oriented oracle engine and fixed-width circuit signals: bytes decompose
// into bits LSB-first within each byte, and 256-bit values decompose into four
// 64-bit limbs with limb 0 least significant. Every conversion here has an
// exact inverse so expected witness values can be rebuilt from signals.
package witness
