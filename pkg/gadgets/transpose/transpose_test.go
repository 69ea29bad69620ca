package transpose_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"

	"github.com/zkships/core/pkg/gadgets/transpose"
)

type circuit struct {
	Ships [10][transpose.BoardSize]frontend.Variable
}

func (c *circuit) Define(api frontend.API) error {
	slices := make([][]frontend.Variable, 10)
	for i := range c.Ships {
		slices[i] = c.Ships[i][:]
	}
	transpose.Verify(api, slices...)
	return nil
}

func zeroBitfield() [transpose.BoardSize]frontend.Variable {
	var out [transpose.BoardSize]frontend.Variable
	for i := range out {
		out[i] = 0
	}
	return out
}

func TestVerifyAcceptsDisjointShips(t *testing.T) {
	assert := test.NewAssert(t)
	var witness circuit
	for i := range witness.Ships {
		witness.Ships[i] = zeroBitfield()
	}
	// Place five non-overlapping single bits, one per ship slot, leaving
	// the other five slots (the unused orientation per ship) empty.
	witness.Ships[0][0] = 1
	witness.Ships[2][11] = 1
	witness.Ships[4][22] = 1
	witness.Ships[6][33] = 1
	witness.Ships[8][44] = 1
	assert.ProverSucceeded(&circuit{}, &witness, test.WithCurves(ecc.BN254))
}

func TestVerifyRejectsOverlap(t *testing.T) {
	assert := test.NewAssert(t)
	var witness circuit
	for i := range witness.Ships {
		witness.Ships[i] = zeroBitfield()
	}
	witness.Ships[0][5] = 1
	witness.Ships[2][5] = 1 // same cell, different ship
	assert.ProverFailed(&circuit{}, &witness, test.WithCurves(ecc.BN254))
}
