package keccak

import (
	"encoding/binary"

	"ZKWill-Oracle/internal/errors"
)

const (
	// Rate is the sponge rate for Keccak-256: (1600 - 2*256) / 8 bytes.
	Rate = 136
	// Size is the digest length in bytes.
	Size = 32
)

// Sum256 computes the Keccak-256 digest of data.
//
// Padding is the legacy multi-rate scheme: a 0x01 domain byte after the
// message, zeros to the rate boundary, and the top bit of the final rate byte
// set. SHA-3 instead uses 0x06 here; the two must never be confused.
func Sum256(data []byte) [Size]byte {
	var s State

	for len(data) >= Rate {
		absorbBlock(&s, data[:Rate])
		s.Permute()
		data = data[Rate:]
	}

	var last [Rate]byte
	copy(last[:], data)
	last[len(data)] ^= 0x01
	last[Rate-1] ^= 0x80
	absorbBlock(&s, last[:])
	s.Permute()

	return squeeze(&s)
}

// SumBits hashes a message given as 0/1 values, LSB-first within each byte,
// and returns the digest in the same bit encoding. The bit count must be a
// multiple of 8: the harness only feeds byte-aligned messages, and unaligned
// lengths would shift the padding position.
func SumBits(msgBits []byte) ([]byte, error) {
	msg, err := packBits(msgBits)
	if err != nil {
		return nil, err
	}
	digest := Sum256(msg)
	return unpackBits(digest[:]), nil
}

// absorbBlock XORs one rate-sized block into the state, little-endian lanes.
func absorbBlock(s *State, block []byte) {
	for i := 0; i < Rate/8; i++ {
		s[i] ^= binary.LittleEndian.Uint64(block[8*i:])
	}
}

// squeeze emits the first 32 bytes of the rate portion. A single squeeze
// suffices because the output is shorter than the rate.
func squeeze(s *State) [Size]byte {
	var out [Size]byte
	for i := 0; i < Size/8; i++ {
		binary.LittleEndian.PutUint64(out[8*i:], s[i])
	}
	return out
}

func packBits(bits []byte) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, errors.Newf(errors.CodeInvalidInputShape, "bit message length %d is not a multiple of 8", len(bits))
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

func unpackBits(data []byte) []byte {
	out := make([]byte, len(data)*8)
	for i := range out {
		out[i] = data[i/8] >> (i % 8) & 1
	}
	return out
}
