package aes

import (
	"encoding/binary"

	"ZKWill-Oracle/internal/gf"
)

// Block is the 16-byte AES state in column-major order: the byte at
// (row, col) lives at index 4*col + row.
type Block = [BlockSize]byte

// SubBytes substitutes every state byte through the S-box.
func SubBytes(state *Block) {
	for i, b := range state {
		state[i] = sbox0[b]
	}
}

// ShiftRows rotates row r of the state left by r positions.
func ShiftRows(state *Block) {
	var out Block
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*c+r] = state[4*((c+r)%4)+r]
		}
	}
	*state = out
}

// MixColumns multiplies each state column by the fixed circulant matrix
// {2,3,1,1} over GF(2^8).
func MixColumns(state *Block) {
	for c := 0; c < 4; c++ {
		s0, s1, s2, s3 := state[4*c], state[4*c+1], state[4*c+2], state[4*c+3]
		state[4*c+0] = gf.Mul8(s0, 2) ^ gf.Mul8(s1, 3) ^ s2 ^ s3
		state[4*c+1] = s0 ^ gf.Mul8(s1, 2) ^ gf.Mul8(s2, 3) ^ s3
		state[4*c+2] = s0 ^ s1 ^ gf.Mul8(s2, 2) ^ gf.Mul8(s3, 3)
		state[4*c+3] = gf.Mul8(s0, 3) ^ s1 ^ s2 ^ gf.Mul8(s3, 2)
	}
}

// AddRoundKey XORs four schedule words into the state, one word per column.
func AddRoundKey(state *Block, words []uint32) {
	for c := 0; c < 4; c++ {
		var wb [4]byte
		binary.BigEndian.PutUint32(wb[:], words[c])
		state[4*c+0] ^= wb[0]
		state[4*c+1] ^= wb[1]
		state[4*c+2] ^= wb[2]
		state[4*c+3] ^= wb[3]
	}
}

// EncryptBlock runs the full 14-round AES-256 encryption of a single block.
// The final round skips MixColumns per FIPS-197.
func EncryptBlock(block Block, ks *KeySchedule) Block {
	state := block
	AddRoundKey(&state, ks[0:4])
	for r := 1; r < rounds; r++ {
		SubBytes(&state)
		ShiftRows(&state)
		MixColumns(&state)
		AddRoundKey(&state, ks[4*r:4*r+4])
	}
	SubBytes(&state)
	ShiftRows(&state)
	AddRoundKey(&state, ks[4*rounds:4*rounds+4])
	return state
}
