package pedersen

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/native/twistededwards"
	"github.com/consensys/gnark/std/rangecheck"
)

// ScalarBits bounds the board-state value v and the trapdoor r before
// they drive fixed-base scalar multiplication. The bound sits below the
// native field's 254-bit modulus but is wider than the 251-bit twisted
// Edwards subgroup order, so it does not by itself keep v or r below
// that order. This is the lookup-table-backed range check §4.4 describes
// as "populated once per proof to support a range-check primitive used
// internally by the scalar-multiplication gadget" — surfaced explicitly
// here rather than left implicit in the scalar-mult gadget's internals.
const ScalarBits = 253

// Commit computes C = v·G_v + r·G_r on the curve and returns its affine
// coordinates. v is the recomposed board state (a base-field element);
// r is the witnessed blinding trapdoor (a scalar-field element) — both
// collapse to the SNARK's single native field here, which is the Open
// Question resolution recorded in the design ledger.
func Commit(api frontend.API, v, r frontend.Variable, gv, gr Point) (cx, cy frontend.Variable, err error) {
	checker := rangecheck.New(api)
	checker.Check(v, ScalarBits)
	checker.Check(r, ScalarBits)

	curve, err := twistededwards.NewEdCurve(api, twistededwards.BN254)
	if err != nil {
		return nil, nil, err
	}

	gvPoint := twistededwards.Point{X: gv.X, Y: gv.Y}
	grPoint := twistededwards.Point{X: gr.X, Y: gr.Y}

	cv := curve.ScalarMul(gvPoint, v)
	cr := curve.ScalarMul(grPoint, r)
	// Twisted Edwards addition is complete — no exceptional cases to
	// special-case the way short Weierstrass curves require.
	sum := curve.Add(cv, cr)
	return sum.X, sum.Y, nil
}
