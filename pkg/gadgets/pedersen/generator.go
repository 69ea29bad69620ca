// Package pedersen implements the §4.4 commitment gadget: C = v·G_v +
// r·G_r over a fixed pair of generators, using the BN254-companion
// twisted Edwards curve gnark exposes natively (no emulated field
// arithmetic needed, unlike a foreign curve such as secp256k1).
package pedersen

import (
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	tedwards "github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
)

// cofactor is the BN254 twisted-Edwards companion curve's cofactor — the
// curve's full order is cofactor times the prime order of Base, the
// standard Jubjub-family convention. Clearing it after try-and-increment
// lands the candidate exactly in Base's prime-order subgroup.
const cofactor = 8

// Personalization is the domain-separation string shared by prover and
// verifier when deriving the fixed generators. Per §6's domain
// separation note, this must be stable across both sides.
const Personalization = "battlezips:hash2curve"

// Point is a fixed generator's affine coordinates, expressed as the
// big.Int constants a circuit embeds directly — these are public,
// derived once at build time, not witnessed per proof.
type Point struct {
	X, Y *big.Int
}

// GV and GR are the two generators used by the board-state and trapdoor
// legs of the commitment, with domain-separation suffixes "v" and "r".
var (
	GV = deriveGenerator("v")
	GR = deriveGenerator("r")
)

// deriveGenerator is a try-and-increment hash-to-curve map: hash a
// counter into a candidate y-coordinate, solve the twisted-Edwards curve
// equation for x, and accept the first candidate that has a square root
// (i.e. lies on the curve), then clear its cofactor. Unlike scaling the
// curve's own base point by a hashed scalar, this produces a point with
// no provable discrete-log relationship to Base or to the other
// generator — exactly the "independent hash-to-curve generators"
// property the commitment's binding guarantee depends on. gnark-crypto
// does not ship a packaged SWU/Elligator map for this curve (unlike its
// bandersnatch counterpart), so this module builds the try-and-increment
// map directly from the curve's own equation instead.
func deriveGenerator(suffix string) Point {
	curve := tedwards.GetEdwardsCurve()

	for counter := uint64(0); ; counter++ {
		h := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%d", Personalization, suffix, counter)))

		var y fr.Element
		y.SetBytes(h[:])

		x, ok := recoverX(&curve.A, &curve.D, &y)
		if !ok {
			continue
		}

		var candidate, cleared tedwards.PointAffine
		candidate.X.Set(x)
		candidate.Y.Set(&y)
		cleared.ScalarMultiplication(&candidate, big.NewInt(cofactor))
		if cleared.X.IsZero() && cleared.Y.IsOne() {
			// the cofactor-8 multiple of an unlucky candidate can land
			// on the curve's identity element; try the next counter.
			continue
		}

		xOut := new(big.Int)
		yOut := new(big.Int)
		cleared.X.BigInt(xOut)
		cleared.Y.BigInt(yOut)
		return Point{X: xOut, Y: yOut}
	}
}

// recoverX solves the twisted-Edwards curve equation a·x²+y² = 1+d·x²·y²
// for x given y: x² = (1-y²)/(a-d·y²). Returns ok=false when that value
// has no square root, i.e. y does not correspond to a point on the curve.
func recoverX(a, d, y *fr.Element) (*fr.Element, bool) {
	var y2, num, den fr.Element
	y2.Square(y)

	num.SetOne()
	num.Sub(&num, &y2)

	den.Mul(d, &y2)
	den.Sub(a, &den)
	if den.IsZero() {
		return nil, false
	}
	den.Inverse(&den)

	var x2 fr.Element
	x2.Mul(&num, &den)

	var x fr.Element
	if x.Sqrt(&x2) == nil {
		return nil, false
	}
	return &x, true
}
