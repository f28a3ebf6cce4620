package keccak

import "math/bits"

// Rounds is the number of rounds in keccak-f[1600].
const Rounds = 24

// State is the 5x5 array of 64-bit lanes; lane (x, y) is State[x+5*y].
type State [25]uint64

// roundConstants are the 24 iota constants for keccak-f[1600].
var roundConstants = [Rounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rhoOffsets holds the fixed per-lane rotation amounts, indexed x+5*y.
var rhoOffsets = [25]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// Theta XORs each lane with the parity of the two neighbouring columns:
// C[x] = xor of column x, D[x] = C[x-1] ^ rotl(C[x+1], 1), A[x,y] ^= D[x].
func (s *State) Theta() {
	var c [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = s[x] ^ s[x+5] ^ s[x+10] ^ s[x+15] ^ s[x+20]
	}
	for x := 0; x < 5; x++ {
		d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		for y := 0; y < 5; y++ {
			s[x+5*y] ^= d
		}
	}
}

// Rho rotates each lane left by its fixed offset. No lanes move position.
func (s *State) Rho() {
	for i := 1; i < 25; i++ {
		s[i] = bits.RotateLeft64(s[i], rhoOffsets[i])
	}
}

// Pi permutes lane positions: B[y, 2x+3y] = A[x, y]. No bits rotate.
func (s *State) Pi() {
	var out State
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			out[y+5*((2*x+3*y)%5)] = s[x+5*y]
		}
	}
	*s = out
}

// Chi applies the row-wise non-linear step
// A[x, y] = A[x, y] ^ (^A[x+1, y] & A[x+2, y]).
func (s *State) Chi() {
	for y := 0; y < 5; y++ {
		row := [5]uint64{s[5*y], s[5*y+1], s[5*y+2], s[5*y+3], s[5*y+4]}
		for x := 0; x < 5; x++ {
			s[x+5*y] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
		}
	}
}

// Iota XORs the round constant into lane (0, 0).
func (s *State) Iota(round int) {
	s[0] ^= roundConstants[round]
}

// Permute runs the full 24-round keccak-f[1600] permutation.
func (s *State) Permute() {
	for round := 0; round < Rounds; round++ {
		s.Theta()
		s.Rho()
		s.Pi()
		s.Chi()
		s.Iota(round)
	}
}
