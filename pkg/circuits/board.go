// Package circuits wires the gadgets of pkg/gadgets into the two
// top-level statements §4.6 and §4.7 describe: proving a fleet is
// validly placed (BoardCircuit) and proving a shot's hit status against
// a committed board (ShotCircuit).
package circuits

import (
	"github.com/consensys/gnark/frontend"

	"github.com/zkships/core/pkg/gadgets/bitdecompose"
	"github.com/zkships/core/pkg/gadgets/pedersen"
	"github.com/zkships/core/pkg/gadgets/placement"
	"github.com/zkships/core/pkg/gadgets/transpose"
)

// BoardSize is the number of cells in the linearized 10×10 grid.
const BoardSize = 100

// shipLengths is the canonical fleet, in the orientation-commitment
// order [Carrier, Battleship, Cruiser, Submarine, Destroyer].
var shipLengths = [5]int{5, 4, 3, 3, 2}

// BoardCircuit proves a Deck's ten orientation commitments describe a
// valid, non-overlapping placement of the canonical fleet, and binds
// that board to a published Pedersen commitment. Public inputs are the
// commitment's affine coordinates; everything else is private witness.
type BoardCircuit struct {
	H5, V5   frontend.Variable
	H4, V4   frontend.Variable
	H3a, V3a frontend.Variable
	H3b, V3b frontend.Variable
	H2, V2   frontend.Variable

	Trapdoor frontend.Variable

	Cx frontend.Variable `gnark:",public"`
	Cy frontend.Variable `gnark:",public"`
}

func (c *BoardCircuit) Define(api frontend.API) error {
	pairs := [5][2]frontend.Variable{
		{c.H5, c.V5},
		{c.H4, c.V4},
		{c.H3a, c.V3a},
		{c.H3b, c.V3b},
		{c.H2, c.V2},
	}

	// Step 2 — H-XOR-V gate: each ship's orientation pair has one zero
	// leg, so their field product must vanish.
	for _, pair := range pairs {
		api.AssertIsEqual(api.Mul(pair[0], pair[1]), 0)
	}

	// Step 3 — decompose each of the ten commitments into 100 bits.
	bits := make([][2][]frontend.Variable, 5)
	for i, pair := range pairs {
		bits[i][0] = bitdecompose.Witness(api, pair[0], BoardSize)
		bits[i][1] = bitdecompose.Witness(api, pair[1], BoardSize)
	}

	// Step 4 — Placement, one invocation per ship kind.
	for i, length := range shipLengths {
		placement.Verify(api, length, bits[i][0], bits[i][1])
	}

	// Step 5 — Transpose over the ten raw bitfields.
	board := transpose.Verify(api,
		bits[0][0], bits[0][1],
		bits[1][0], bits[1][1],
		bits[2][0], bits[2][1],
		bits[3][0], bits[3][1],
		bits[4][0], bits[4][1],
	)

	// Step 6 — recompose the board bitfield into a field element.
	v := bitdecompose.Compose(api, board)

	// Step 7 — Pedersen commitment over the recomposed board and the
	// witnessed trapdoor.
	cx, cy, err := pedersen.Commit(api, v, c.Trapdoor, pedersen.GV, pedersen.GR)
	if err != nil {
		return err
	}

	// Step 8 — bind the commitment to the public instance.
	api.AssertIsEqual(cx, c.Cx)
	api.AssertIsEqual(cy, c.Cy)
	return nil
}
