package aes

import (
	"encoding/binary"

	"ZKWill-Oracle/internal/errors"
	"ZKWill-Oracle/internal/gf"
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16
	// KeySize is the AES-256 key size in bytes.
	KeySize = 32

	rounds = 14 // Nr for AES-256
	nk     = 8  // key length in 32-bit words

	// scheduleWords is 4*(Nr+1): one round key per round plus the initial one.
	scheduleWords = 4 * (rounds + 1)
)

// KeySchedule holds the 60 expanded round-key words for AES-256, big-endian
// within each word. It is derived once per key and never mutated.
type KeySchedule [scheduleWords]uint32

// ExpandKey runs the Rijndael key schedule for a 32-byte key. With Nk=8 every
// 8th word goes through RotWord+SubWord+Rcon and every 8th+4 word through
// SubWord alone before the XOR with the word eight positions back.
func ExpandKey(key []byte) (*KeySchedule, error) {
	if len(key) != KeySize {
		return nil, errors.Newf(errors.CodeInvalidInputShape, "AES-256 key must be %d bytes, got %d", KeySize, len(key))
	}

	var ks KeySchedule
	for i := 0; i < nk; i++ {
		ks[i] = binary.BigEndian.Uint32(key[4*i:])
	}

	rcon := byte(1) // Rcon[i] = x^(i-1) in GF(2^8)
	for i := nk; i < scheduleWords; i++ {
		t := ks[i-1]
		switch {
		case i%nk == 0:
			t = subWord(rotWord(t)) ^ uint32(rcon)<<24
			rcon = gf.Double8(rcon)
		case i%nk == 4:
			t = subWord(t)
		}
		ks[i] = ks[i-nk] ^ t
	}
	return &ks, nil
}

// subWord applies the S-box to each byte of a word.
func subWord(w uint32) uint32 {
	return uint32(sbox0[w>>24])<<24 |
		uint32(sbox0[w>>16&0xff])<<16 |
		uint32(sbox0[w>>8&0xff])<<8 |
		uint32(sbox0[w&0xff])
}

// rotWord cyclically rotates a word left by one byte.
func rotWord(w uint32) uint32 {
	return w<<8 | w>>24
}
