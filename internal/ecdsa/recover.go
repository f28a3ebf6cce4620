package ecdsa

import (
	"math/big"

	"ZKWill-Oracle/internal/errors"
	"ZKWill-Oracle/internal/secp256k1"
)

// RecoverPublicKey reconstructs the signing public key from a signature and
// the message hash. The recovery id selects among the candidate R points:
// bit 0 is the parity of R.y, bit 1 marks the r + n x-overflow case. Legacy
// Ethereum values 27/28 are normalized before use.
func RecoverPublicKey(hash [32]byte, sig Signature) (secp256k1.Point, error) {
	n := secp256k1.N()
	p := secp256k1.P()

	if !scalarInRange(sig.R, n) || !scalarInRange(sig.S, n) {
		return secp256k1.Point{}, errors.New(errors.CodeSignatureOutOfRange, "")
	}
	v := sig.V
	if v == 27 || v == 28 {
		v -= 27
	}
	if v > 3 {
		return secp256k1.Point{}, errors.Newf(errors.CodeSignatureOutOfRange, "recovery id %d", sig.V)
	}

	// Candidate x = r (or r + n when the x coordinate overflowed the order).
	x := new(big.Int).Set(sig.R)
	if v&2 != 0 {
		x.Add(x, n)
	}
	if x.Cmp(p) >= 0 {
		return secp256k1.Point{}, errors.New(errors.CodeSignatureOutOfRange, "candidate x beyond field prime")
	}

	y, err := liftX(x, v&1 == 1)
	if err != nil {
		return secp256k1.Point{}, err
	}
	bigR := secp256k1.NewPoint(x, y)

	// pub = r^-1 (s*R - z*G)
	z := new(big.Int).SetBytes(hash[:])
	z.Mod(z, n)

	sR, err := secp256k1.ScalarMult(sig.S, bigR)
	if err != nil {
		return secp256k1.Point{}, err
	}
	zG, err := secp256k1.ScalarBaseMult(z)
	if err != nil {
		return secp256k1.Point{}, err
	}
	negZG := zG
	if !zG.Infinity {
		negZG = secp256k1.NewPoint(zG.X, new(big.Int).Sub(p, zG.Y))
	}
	diff, err := secp256k1.Add(sR, negZG)
	if err != nil {
		return secp256k1.Point{}, err
	}

	rInv := new(big.Int).ModInverse(sig.R, n)
	pub, err := secp256k1.ScalarMult(rInv, diff)
	if err != nil {
		return secp256k1.Point{}, err
	}
	if pub.Infinity {
		return secp256k1.Point{}, errors.New(errors.CodeInvalidCurvePoint, "recovered the identity point")
	}
	return pub, nil
}

// liftX solves y^2 = x^3 + 7 for y with the requested parity. p = 3 mod 4,
// so the square root is a single exponentiation by (p+1)/4.
func liftX(x *big.Int, odd bool) (*big.Int, error) {
	p := secp256k1.P()

	alpha := new(big.Int).Exp(x, big.NewInt(3), p)
	alpha.Add(alpha, big.NewInt(7))
	alpha.Mod(alpha, p)

	exp := new(big.Int).Add(p, big.NewInt(1))
	exp.Rsh(exp, 2)
	y := new(big.Int).Exp(alpha, exp, p)

	check := new(big.Int).Mul(y, y)
	check.Mod(check, p)
	if check.Cmp(alpha) != 0 {
		return nil, errors.New(errors.CodeInvalidCurvePoint, "r does not correspond to a curve x coordinate")
	}
	if (y.Bit(0) == 1) != odd {
		y.Sub(p, y)
	}
	return y, nil
}
