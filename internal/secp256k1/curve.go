package secp256k1

import (
	"math/big"

	"ZKWill-Oracle/internal/errors"
)

// Curve parameters from SEC 2 v2. The coefficients a=0, b=7 are baked into
// the formulas below.
var (
	curveP, _  = new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	curveN, _  = new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)
	curveGx, _ = new(big.Int).SetString("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", 16)
	curveGy, _ = new(big.Int).SetString("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8", 16)

	curveB = big.NewInt(7)
)

// P returns the field prime.
func P() *big.Int { return new(big.Int).Set(curveP) }

// N returns the curve group order.
func N() *big.Int { return new(big.Int).Set(curveN) }

// Point is an affine curve point. The identity element carries Infinity=true
// and nil coordinates.
type Point struct {
	X, Y     *big.Int
	Infinity bool
}

// Infinity returns the identity element.
func Infinity() Point {
	return Point{Infinity: true}
}

// Generator returns the base point G.
func Generator() Point {
	return NewPoint(curveGx, curveGy)
}

// NewPoint builds a finite point from copies of the given coordinates.
func NewPoint(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// IsOnCurve reports whether the point satisfies y^2 = x^3 + 7 mod p. The
// identity is considered on the curve.
func (p Point) IsOnCurve() bool {
	if p.Infinity {
		return true
	}
	if p.X == nil || p.Y == nil {
		return false
	}
	if p.X.Sign() < 0 || p.X.Cmp(curveP) >= 0 || p.Y.Sign() < 0 || p.Y.Cmp(curveP) >= 0 {
		return false
	}
	y2 := new(big.Int).Mul(p.Y, p.Y)
	y2.Mod(y2, curveP)
	rhs := new(big.Int).Mul(p.X, p.X)
	rhs.Mul(rhs, p.X)
	rhs.Add(rhs, curveB)
	rhs.Mod(rhs, curveP)
	return y2.Cmp(rhs) == 0
}

// Equal reports whether two points are the same group element.
func (p Point) Equal(q Point) bool {
	if p.Infinity || q.Infinity {
		return p.Infinity == q.Infinity
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

func checkOperand(p Point) error {
	if !p.IsOnCurve() {
		return errors.New(errors.CodeInvalidCurvePoint, "")
	}
	return nil
}

// Add returns p1 + p2 under the group law. Non-infinity operands must lie on
// the curve.
func Add(p1, p2 Point) (Point, error) {
	if err := checkOperand(p1); err != nil {
		return Point{}, err
	}
	if err := checkOperand(p2); err != nil {
		return Point{}, err
	}
	if p1.Infinity {
		return clonePoint(p2), nil
	}
	if p2.Infinity {
		return clonePoint(p1), nil
	}
	if p1.X.Cmp(p2.X) == 0 {
		if p1.Y.Cmp(p2.Y) != 0 {
			// vertical chord: P + (-P) = identity
			return Infinity(), nil
		}
		return Double(p1)
	}

	// chord slope (y2-y1)/(x2-x1)
	dx := new(big.Int).Sub(p2.X, p1.X)
	dx.Mod(dx, curveP)
	dy := new(big.Int).Sub(p2.Y, p1.Y)
	dy.Mod(dy, curveP)
	lambda := new(big.Int).ModInverse(dx, curveP)
	lambda.Mul(lambda, dy)
	lambda.Mod(lambda, curveP)

	return chordResult(lambda, p1, p2.X), nil
}

// Double returns 2*p. Doubling a point with y=0 yields the identity.
func Double(p Point) (Point, error) {
	if err := checkOperand(p); err != nil {
		return Point{}, err
	}
	if p.Infinity {
		return Infinity(), nil
	}
	if p.Y.Sign() == 0 {
		return Infinity(), nil
	}

	// tangent slope 3x^2 / 2y (a = 0)
	num := new(big.Int).Mul(p.X, p.X)
	num.Mul(num, big.NewInt(3))
	num.Mod(num, curveP)
	den := new(big.Int).Lsh(p.Y, 1)
	den.Mod(den, curveP)
	lambda := new(big.Int).ModInverse(den, curveP)
	lambda.Mul(lambda, num)
	lambda.Mod(lambda, curveP)

	return chordResult(lambda, p, p.X), nil
}

// chordResult computes x3 = lambda^2 - x1 - x2, y3 = lambda*(x1-x3) - y1.
func chordResult(lambda *big.Int, p1 Point, x2 *big.Int) Point {
	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p1.X)
	x3.Sub(x3, x2)
	x3.Mod(x3, curveP)

	y3 := new(big.Int).Sub(p1.X, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p1.Y)
	y3.Mod(y3, curveP)

	return Point{X: x3, Y: y3}
}

// ScalarMult returns k*p via left-to-right double-and-add. Negative scalars
// are rejected; k is reduced modulo nothing so callers control the domain.
func ScalarMult(k *big.Int, p Point) (Point, error) {
	if k == nil || k.Sign() < 0 {
		return Point{}, errors.New(errors.CodeInvalidInputShape, "scalar must be non-negative")
	}
	if err := checkOperand(p); err != nil {
		return Point{}, err
	}

	result := Infinity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		var err error
		result, err = Double(result)
		if err != nil {
			return Point{}, err
		}
		if k.Bit(i) == 1 {
			result, err = Add(result, p)
			if err != nil {
				return Point{}, err
			}
		}
	}
	return result, nil
}

// ScalarBaseMult returns k*G.
func ScalarBaseMult(k *big.Int) (Point, error) {
	return ScalarMult(k, Generator())
}

func clonePoint(p Point) Point {
	if p.Infinity {
		return Infinity()
	}
	return NewPoint(p.X, p.Y)
}
