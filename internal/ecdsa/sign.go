package ecdsa

import (
	"math/big"

	"ZKWill-Oracle/internal/errors"
	"ZKWill-Oracle/internal/secp256k1"
)

// Signature is an ECDSA signature with recovery id. R and S are in [1, n-1],
// S is low-s normalized, V is 0 or 1 (plus 2 in the astronomically rare case
// that R.x overflowed the group order).
type Signature struct {
	R, S *big.Int
	V    byte
}

// Sign produces a deterministic RFC 6979 signature over the 32-byte message
// hash. Candidates with r = 0 or s = 0 are discarded and the next nonce in
// the sequence is drawn, per the standard.
func Sign(hash [32]byte, priv *PrivateKey) (Signature, error) {
	if priv == nil || priv.D == nil || priv.D.Sign() <= 0 || priv.D.Cmp(secp256k1.N()) >= 0 {
		return Signature{}, errors.New(errors.CodeInvalidInputShape, "private key scalar outside [1, n-1]")
	}

	n := secp256k1.N()
	z := new(big.Int).SetBytes(hash[:])
	z.Mod(z, n)

	nonces := newNonceGenerator(priv.D, hash)
	for {
		k := nonces.next()
		rp, err := secp256k1.ScalarBaseMult(k)
		if err != nil {
			return Signature{}, err
		}

		r := new(big.Int).Mod(rp.X, n)
		if r.Sign() == 0 {
			continue
		}

		// s = k^-1 (z + r*d) mod n
		s := new(big.Int).Mul(r, priv.D)
		s.Add(s, z)
		s.Mul(s, new(big.Int).ModInverse(k, n))
		s.Mod(s, n)
		if s.Sign() == 0 {
			continue
		}

		v := byte(rp.Y.Bit(0))
		if rp.X.Cmp(n) >= 0 {
			v += 2
		}

		// Low-s normalization flips the parity of the matching R point.
		if s.Cmp(halfOrder()) > 0 {
			s.Sub(n, s)
			v ^= 1
		}

		return Signature{R: r, S: s, V: v}, nil
	}
}

// Verify checks the standard ECDSA equation. It never errors: any malformed
// but well-typed input (out-of-range r or s, off-curve or identity public
// key) simply verifies as false.
func Verify(hash [32]byte, sig Signature, pub secp256k1.Point) bool {
	n := secp256k1.N()
	if !scalarInRange(sig.R, n) || !scalarInRange(sig.S, n) {
		return false
	}
	if pub.Infinity || !pub.IsOnCurve() {
		return false
	}

	z := new(big.Int).SetBytes(hash[:])
	z.Mod(z, n)

	w := new(big.Int).ModInverse(sig.S, n)
	u1 := new(big.Int).Mul(z, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, n)

	p1, err := secp256k1.ScalarBaseMult(u1)
	if err != nil {
		return false
	}
	p2, err := secp256k1.ScalarMult(u2, pub)
	if err != nil {
		return false
	}
	sum, err := secp256k1.Add(p1, p2)
	if err != nil || sum.Infinity {
		return false
	}

	x := new(big.Int).Mod(sum.X, n)
	return x.Cmp(sig.R) == 0
}

func scalarInRange(v *big.Int, n *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.Cmp(n) < 0
}

func halfOrder() *big.Int {
	return new(big.Int).Rsh(secp256k1.N(), 1)
}
