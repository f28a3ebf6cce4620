// Package keccak implements keccak-f[1600] and the Keccak-256 sponge with the
// legacy 0x01 multi-rate padding used by Ethereum, not the NIST SHA-3 0x06
// domain byte. The five round functions are exported individually on State so
// the circuit harness can reproduce any intermediate 1600-bit state.
//
// Lane (x, y) lives at State[x+5*y]; bytes map to lanes little-endian.
package keccak
