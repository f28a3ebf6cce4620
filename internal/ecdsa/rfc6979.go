package ecdsa

import (
	"crypto/hmac"
	"crypto/sha256"
	"math/big"

	"ZKWill-Oracle/internal/secp256k1"
)

// nonceGenerator yields the deterministic RFC 6979 candidate-nonce sequence
// for a given (key, message hash) pair using HMAC-SHA256. With a 256-bit
// curve and a 256-bit hash, bits2int is the identity on 32-byte strings.
type nonceGenerator struct {
	k, v []byte
	n    *big.Int
}

func newNonceGenerator(priv *big.Int, hash [32]byte) *nonceGenerator {
	g := &nonceGenerator{
		k: make([]byte, sha256.Size),
		v: make([]byte, sha256.Size),
		n: secp256k1.N(),
	}
	for i := range g.v {
		g.v[i] = 0x01
	}

	x := bytes32(priv)
	h := bits2octets(hash, g.n)

	g.k = hmacSHA256(g.k, g.v, []byte{0x00}, x[:], h)
	g.v = hmacSHA256(g.k, g.v)
	g.k = hmacSHA256(g.k, g.v, []byte{0x01}, x[:], h)
	g.v = hmacSHA256(g.k, g.v)
	return g
}

// next returns the following nonce candidate in [1, n-1]. Out-of-range
// candidates are skipped per RFC 6979 §3.2 step h.
func (g *nonceGenerator) next() *big.Int {
	for {
		g.v = hmacSHA256(g.k, g.v)
		k := new(big.Int).SetBytes(g.v)
		if k.Sign() > 0 && k.Cmp(g.n) < 0 {
			return k
		}
		g.k = hmacSHA256(g.k, g.v, []byte{0x00})
		g.v = hmacSHA256(g.k, g.v)
	}
}

func hmacSHA256(key []byte, chunks ...[]byte) []byte {
	mac := hmac.New(sha256.New, key)
	for _, chunk := range chunks {
		mac.Write(chunk)
	}
	return mac.Sum(nil)
}

// bits2octets reduces the hash modulo n and re-encodes it as 32 bytes.
func bits2octets(hash [32]byte, n *big.Int) []byte {
	z := new(big.Int).SetBytes(hash[:])
	z.Mod(z, n)
	out := bytes32(z)
	return out[:]
}
