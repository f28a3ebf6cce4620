// Package secp256k1 implements affine-coordinate arithmetic on the secp256k1
// curve y^2 = x^3 + 7 over GF(p), with the point at infinity as an explicit
// identity case. Affine big.Int arithmetic is deliberately plain: each chord
// and tangent slope is an oracle value the circuit harness reproduces, which
// rules out Jacobian shortcuts and table-driven scalar multiplication.
package secp256k1
