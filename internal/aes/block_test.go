package aes

import (
	"encoding/hex"
	"testing"

	"ZKWill-Oracle/internal/errors"
	"ZKWill-Oracle/internal/gf"
)

func mustBlock(t *testing.T, s string) Block {
	t.Helper()
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != BlockSize {
		t.Fatalf("bad block literal %q", s)
	}
	var b Block
	copy(b[:], raw)
	return b
}

func TestSBoxDerivation(t *testing.T) {
	// The table must equal inverse-in-GF(2^8) followed by the affine
	// transform. Brute-force the inverse through gf.Mul8 so the table and
	// the field arithmetic cannot drift apart.
	inverse := func(a byte) byte {
		if a == 0 {
			return 0
		}
		for b := 1; b < 256; b++ {
			if gf.Mul8(a, byte(b)) == 1 {
				return byte(b)
			}
		}
		t.Fatalf("no inverse for %#02x", a)
		return 0
	}
	for i := 0; i < 256; i++ {
		c := inverse(byte(i))
		x := c
		for j := 0; j < 4; j++ {
			c = c<<1 | c>>7
			x ^= c
		}
		x ^= 0x63
		if sbox0[i] != x {
			t.Fatalf("sbox0[%#02x] = %#02x, derivation gives %#02x", i, sbox0[i], x)
		}
	}
}

func TestExpandKeyRejectsWrongLength(t *testing.T) {
	for _, n := range []int{0, 16, 24, 31, 33} {
		if _, err := ExpandKey(make([]byte, n)); errors.CodeOf(err) != errors.CodeInvalidInputShape {
			t.Fatalf("ExpandKey with %d-byte key: want INVALID_INPUT_SHAPE, got %v", n, err)
		}
	}
}

func TestExpandKeyFIPS197Vector(t *testing.T) {
	// FIPS-197 appendix A.3 key expansion.
	key, _ := hex.DecodeString("603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4")
	ks, err := ExpandKey(key)
	if err != nil {
		t.Fatalf("ExpandKey: %v", err)
	}
	want := map[int]uint32{
		0:  0x603deb10,
		7:  0x0914dff4,
		8:  0x9ba35411, // first RotWord+SubWord+Rcon word
		9:  0x8e6925af,
		56: 0xfe4890d1,
		57: 0xe6188d0b,
		58: 0x046df344,
		59: 0x706c631e,
	}
	for i, w := range want {
		if ks[i] != w {
			t.Fatalf("w[%d] = %#08x, want %#08x", i, ks[i], w)
		}
	}
}

func TestExpandKeyDeterministic(t *testing.T) {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(i * 7)
	}
	a, err := ExpandKey(key)
	if err != nil {
		t.Fatalf("ExpandKey: %v", err)
	}
	b, _ := ExpandKey(key)
	if *a != *b {
		t.Fatalf("ExpandKey is not deterministic")
	}
}

func TestShiftRowsRotation(t *testing.T) {
	// Column-major layout: row r must rotate left by r positions.
	var state Block
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			state[4*c+r] = byte(16*r + c) // value encodes (row, col)
		}
	}
	ShiftRows(&state)
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			want := byte(16*r + (c+r)%4)
			if state[4*c+r] != want {
				t.Fatalf("row %d col %d = %#02x, want %#02x", r, c, state[4*c+r], want)
			}
		}
	}
}

func TestMixColumnsKnownColumn(t *testing.T) {
	// Single-column vector from FIPS-197 §5.1.3 examples:
	// db 13 53 45 -> 8e 4d a1 bc.
	state := mustBlock(t, "db135345000000000000000000000000")
	MixColumns(&state)
	if got := hex.EncodeToString(state[:4]); got != "8e4da1bc" {
		t.Fatalf("MixColumns column = %s, want 8e4da1bc", got)
	}
}

func TestEncryptBlockFIPS197(t *testing.T) {
	// FIPS-197 appendix C.3: AES-256 with the sequential byte key.
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	ks, err := ExpandKey(key)
	if err != nil {
		t.Fatalf("ExpandKey: %v", err)
	}
	pt := mustBlock(t, "00112233445566778899aabbccddeeff")
	ct := EncryptBlock(pt, ks)
	want := mustBlock(t, "8ea2b7ca516745bfeafc49904b496089")
	if ct != want {
		t.Fatalf("EncryptBlock = %x, want %x", ct, want)
	}
}

func TestEncryptBlockLeavesInputIntact(t *testing.T) {
	key := make([]byte, KeySize)
	ks, _ := ExpandKey(key)
	pt := mustBlock(t, "000102030405060708090a0b0c0d0e0f")
	before := pt
	_ = EncryptBlock(pt, ks)
	if pt != before {
		t.Fatalf("EncryptBlock mutated its input block")
	}
}
