package ecdsa

import (
	"io"
	"math/big"

	"ZKWill-Oracle/internal/errors"
	"ZKWill-Oracle/internal/secp256k1"
)

// PrivateKey is a secp256k1 scalar in [1, n-1].
type PrivateKey struct {
	D *big.Int
}

// GenerateKey draws a uniformly random private key from rand by rejection
// sampling 32-byte candidates against the group order.
func GenerateKey(rand io.Reader) (*PrivateKey, error) {
	buf := make([]byte, 32)
	for {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, errors.Wrap(errors.CodeUnknown, err, "read key material")
		}
		d := new(big.Int).SetBytes(buf)
		if d.Sign() > 0 && d.Cmp(secp256k1.N()) < 0 {
			return &PrivateKey{D: d}, nil
		}
	}
}

// NewPrivateKey validates a scalar and wraps it as a key.
func NewPrivateKey(d *big.Int) (*PrivateKey, error) {
	if d == nil || d.Sign() <= 0 || d.Cmp(secp256k1.N()) >= 0 {
		return nil, errors.New(errors.CodeInvalidInputShape, "private key scalar outside [1, n-1]")
	}
	return &PrivateKey{D: new(big.Int).Set(d)}, nil
}

// Public derives the public point d*G. Recomputed per call rather than
// cached, so keys stay immutable values.
func (k *PrivateKey) Public() (secp256k1.Point, error) {
	if k == nil || k.D == nil {
		return secp256k1.Point{}, errors.New(errors.CodeInvalidInputShape, "nil private key")
	}
	return secp256k1.ScalarBaseMult(k.D)
}

// bytes32 left-pads a scalar to a fixed 32-byte big-endian encoding.
func bytes32(v *big.Int) [32]byte {
	var out [32]byte
	v.FillBytes(out[:])
	return out
}
