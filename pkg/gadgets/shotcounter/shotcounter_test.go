package shotcounter_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"

	"github.com/zkships/core/pkg/gadgets/shotcounter"
)

type circuit struct {
	Board [shotcounter.BoardSize]frontend.Variable
	Shot  [shotcounter.BoardSize]frontend.Variable
	H     frontend.Variable `gnark:",public"`
}

func (c *circuit) Define(api frontend.API) error {
	shotcounter.Verify(api, c.Board[:], c.Shot[:], c.H)
	return nil
}

func bitfield(setIndices ...int) [shotcounter.BoardSize]frontend.Variable {
	var out [shotcounter.BoardSize]frontend.Variable
	for i := range out {
		out[i] = 0
	}
	for _, idx := range setIndices {
		out[idx] = 1
	}
	return out
}

func TestVerifyHit(t *testing.T) {
	assert := test.NewAssert(t)
	witness := circuit{
		Board: bitfield(5, 17, 42),
		Shot:  bitfield(17),
		H:     1,
	}
	assert.ProverSucceeded(&circuit{}, &witness, test.WithCurves(ecc.BN254))
}

func TestVerifyMiss(t *testing.T) {
	assert := test.NewAssert(t)
	witness := circuit{
		Board: bitfield(5, 17, 42),
		Shot:  bitfield(18),
		H:     0,
	}
	assert.ProverSucceeded(&circuit{}, &witness, test.WithCurves(ecc.BN254))
}

func TestVerifyRejectsHitMismatch(t *testing.T) {
	assert := test.NewAssert(t)
	witness := circuit{
		Board: bitfield(5, 17, 42),
		Shot:  bitfield(17),
		H:     0, // lying about a hit
	}
	assert.ProverFailed(&circuit{}, &witness, test.WithCurves(ecc.BN254))
}

func TestVerifyRejectsMultipleShots(t *testing.T) {
	assert := test.NewAssert(t)
	witness := circuit{
		Board: bitfield(5, 17, 42),
		Shot:  bitfield(17, 18),
		H:     1,
	}
	assert.ProverFailed(&circuit{}, &witness, test.WithCurves(ecc.BN254))
}
