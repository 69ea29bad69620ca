package pedersen_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	tedwards "github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"

	"github.com/zkships/core/pkg/gadgets/pedersen"
)

type commitCircuit struct {
	V, R   frontend.Variable
	Cx, Cy frontend.Variable `gnark:",public"`
}

func (c *commitCircuit) Define(api frontend.API) error {
	cx, cy, err := pedersen.Commit(api, c.V, c.R, pedersen.GV, pedersen.GR)
	if err != nil {
		return err
	}
	api.AssertIsEqual(cx, c.Cx)
	api.AssertIsEqual(cy, c.Cy)
	return nil
}

// expectedCommitment reproduces Commit's arithmetic off-circuit so the
// test can supply a consistent public output without running the prover
// twice.
func expectedCommitment(v, r int64) (x, y *big.Int) {
	curve := tedwards.GetEdwardsCurve()

	var gv, gr tedwards.PointAffine
	gv.X.SetBigInt(pedersen.GV.X)
	gv.Y.SetBigInt(pedersen.GV.Y)
	gr.X.SetBigInt(pedersen.GR.X)
	gr.Y.SetBigInt(pedersen.GR.Y)

	var cv, cr tedwards.PointAffine
	cv.ScalarMultiplication(&gv, big.NewInt(v))
	cr.ScalarMultiplication(&gr, big.NewInt(r))

	var sum tedwards.PointAffine
	sum.Add(&cv, &cr)

	_ = curve
	x, y = new(big.Int), new(big.Int)
	sum.X.BigInt(x)
	sum.Y.BigInt(y)
	return x, y
}

func TestCommitMatchesOffCircuitComputation(t *testing.T) {
	assert := test.NewAssert(t)
	v, r := int64(42), int64(7)
	cx, cy := expectedCommitment(v, r)
	witness := commitCircuit{V: v, R: r, Cx: cx, Cy: cy}
	assert.ProverSucceeded(&commitCircuit{}, &witness, test.WithCurves(ecc.BN254))
}

func TestCommitRejectsWrongOutput(t *testing.T) {
	assert := test.NewAssert(t)
	cx, cy := expectedCommitment(42, 7)
	tamperedX := new(big.Int).Add(cx, big.NewInt(1))
	witness := commitCircuit{V: 42, R: 7, Cx: tamperedX, Cy: cy}
	assert.ProverFailed(&commitCircuit{}, &witness, test.WithCurves(ecc.BN254))
}
