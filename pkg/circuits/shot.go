package circuits

import (
	"github.com/consensys/gnark/frontend"

	"github.com/zkships/core/pkg/gadgets/bitdecompose"
	"github.com/zkships/core/pkg/gadgets/pedersen"
	"github.com/zkships/core/pkg/gadgets/shotcounter"
)

// ShotCircuit proves that an asserted hit bit correctly reports whether
// a shot commitment intersects a board committed to by the same
// Pedersen commitment used in BoardCircuit. Public inputs are the
// commitment coordinates, the shot commitment, and the hit bit.
type ShotCircuit struct {
	BoardState frontend.Variable
	Trapdoor   frontend.Variable

	Cx             frontend.Variable `gnark:",public"`
	Cy             frontend.Variable `gnark:",public"`
	ShotCommitment frontend.Variable `gnark:",public"`
	Hit            frontend.Variable `gnark:",public"`
}

func (c *ShotCircuit) Define(api frontend.API) error {
	// Step 2 — decompose board state and shot commitment into bits.
	boardBits := bitdecompose.Witness(api, c.BoardState, BoardSize)
	shotBits := bitdecompose.Witness(api, c.ShotCommitment, BoardSize)

	// Step 3 — ShotCounter enforces exactly one shot bit and that the
	// asserted hit bit matches the board/shot intersection.
	shotcounter.Verify(api, boardBits, shotBits, c.Hit)

	// Step 4 — Pedersen commitment over the board state, bound to the
	// same public commitment coordinates BoardCircuit publishes.
	cx, cy, err := pedersen.Commit(api, c.BoardState, c.Trapdoor, pedersen.GV, pedersen.GR)
	if err != nil {
		return err
	}
	api.AssertIsEqual(cx, c.Cx)
	api.AssertIsEqual(cy, c.Cy)
	return nil
}
