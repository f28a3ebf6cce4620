package aes

import (
	"crypto/subtle"
	"encoding/binary"

	"ZKWill-Oracle/internal/errors"
	"ZKWill-Oracle/internal/gf"
)

// TagSize is the GCM authentication tag size in bytes.
const TagSize = 16

// HashSubkey derives the GHASH subkey H by encrypting the zero block.
func HashSubkey(ks *KeySchedule) Block {
	var zero Block
	return EncryptBlock(zero, ks)
}

// ComputeJ0 derives the initial counter block from the IV. A 12-byte IV takes
// the fast path IV || 0x00000001 with no hashing; any other length is folded
// through GHASH together with its bit length.
func ComputeJ0(iv []byte, h Block) (Block, error) {
	var j0 Block
	if len(iv) == 0 {
		return j0, errors.New(errors.CodeInvalidInputShape, "GCM IV must be at least 1 byte")
	}
	if len(iv) == 12 {
		copy(j0[:12], iv)
		j0[15] = 1
		return j0, nil
	}
	data := make([]byte, pad16len(len(iv))+16)
	copy(data, iv)
	binary.BigEndian.PutUint64(data[len(data)-8:], uint64(len(iv))*8)
	return GHASH(h, data), nil
}

// IncrementCounter adds one to the 32-bit big-endian counter in the last four
// bytes of the block, wrapping modulo 2^32. The first 12 bytes are untouched.
func IncrementCounter(block Block) Block {
	ctr := binary.BigEndian.Uint32(block[12:])
	binary.BigEndian.PutUint32(block[12:], ctr+1)
	return block
}

// GHASH folds data, zero-padded to a 16-byte multiple, into the accumulator
// Y = (Y xor block) * H starting from Y = 0.
func GHASH(h Block, data []byte) Block {
	var y Block
	for off := 0; off < len(data); off += BlockSize {
		var blk Block
		copy(blk[:], data[off:]) // final short chunk stays zero-padded
		for i := range y {
			y[i] ^= blk[i]
		}
		y = gf.Mul128(y, h)
	}
	return y
}

// ctrCrypt XORs data with the AES-CTR keystream. The counter is incremented
// once before the first keystream block is generated, so the initial counter
// block itself is reserved for the tag mask. Output length equals input
// length; no block padding leaks.
func ctrCrypt(data []byte, ks *KeySchedule, icb Block) []byte {
	out := make([]byte, len(data))
	cb := icb
	for off := 0; off < len(data); off += BlockSize {
		cb = IncrementCounter(cb)
		keystream := EncryptBlock(cb, ks)
		n := len(data) - off
		if n > BlockSize {
			n = BlockSize
		}
		for i := 0; i < n; i++ {
			out[off+i] = data[off+i] ^ keystream[i]
		}
	}
	return out
}

// CTR exposes the counter-mode keystream XOR for the circuit harness.
func CTR(data []byte, ks *KeySchedule, initialCounterBlock Block) []byte {
	return ctrCrypt(data, ks, initialCounterBlock)
}

// Encrypt performs AES-256-GCM authenticated encryption and returns the
// ciphertext together with the 16-byte authentication tag.
func Encrypt(key, iv, plaintext, aad []byte) ([]byte, Block, error) {
	var tag Block
	ks, err := ExpandKey(key)
	if err != nil {
		return nil, tag, err
	}
	h := HashSubkey(ks)
	j0, err := ComputeJ0(iv, h)
	if err != nil {
		return nil, tag, err
	}

	ciphertext := ctrCrypt(plaintext, ks, j0)
	tag = computeTag(ks, h, j0, aad, ciphertext)
	return ciphertext, tag, nil
}

// Decrypt recomputes the expected tag from (key, iv, aad, ciphertext) and
// fails closed: on mismatch it returns AuthenticationFailure and releases no
// plaintext bytes.
func Decrypt(key, iv, ciphertext, aad []byte, tag Block) ([]byte, error) {
	ks, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}
	h := HashSubkey(ks)
	j0, err := ComputeJ0(iv, h)
	if err != nil {
		return nil, err
	}

	expected := computeTag(ks, h, j0, aad, ciphertext)
	if subtle.ConstantTimeCompare(expected[:], tag[:]) != 1 {
		return nil, errors.New(errors.CodeAuthenticationFailure, "")
	}
	return ctrCrypt(ciphertext, ks, j0), nil
}

// computeTag builds S = GHASH(H, pad(aad) || pad(ct) || bitlen(aad) ||
// bitlen(ct)) and masks it with the encrypted initial counter block.
func computeTag(ks *KeySchedule, h, j0 Block, aad, ciphertext []byte) Block {
	data := make([]byte, pad16len(len(aad))+pad16len(len(ciphertext))+16)
	copy(data, aad)
	copy(data[pad16len(len(aad)):], ciphertext)
	lenOff := len(data) - 16
	binary.BigEndian.PutUint64(data[lenOff:], uint64(len(aad))*8)
	binary.BigEndian.PutUint64(data[lenOff+8:], uint64(len(ciphertext))*8)

	s := GHASH(h, data)
	mask := EncryptBlock(j0, ks)
	for i := range s {
		s[i] ^= mask[i]
	}
	return s
}

// pad16len rounds n up to the next multiple of the block size.
func pad16len(n int) int {
	if n%BlockSize == 0 {
		return n
	}
	return n + BlockSize - n%BlockSize
}
