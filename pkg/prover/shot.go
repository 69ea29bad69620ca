package prover

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/backend/plonk"

	"github.com/zkships/core/internal/log"
	"github.com/zkships/core/pkg/circuits"
	"github.com/zkships/core/pkg/types"
)

// ShotPublicOutputs is the public instance of a shot proof, in the fixed
// order verifiers must supply per §5: [Cx, Cy, shot_commitment, hit].
type ShotPublicOutputs struct {
	Cx, Cy         *big.Int
	ShotCommitment *big.Int
	Hit            int64
}

// ShotProof bundles a shot's public outputs with its proof.
type ShotProof struct {
	Public ShotPublicOutputs
	Proof  plonk.Proof
}

var shotKeys *Keys

// ShotKeys runs (and memoizes) Setup for ShotCircuit.
func ShotKeys() (*Keys, error) {
	if shotKeys != nil {
		return shotKeys, nil
	}
	keys, err := Setup(&circuits.ShotCircuit{})
	if err != nil {
		return nil, err
	}
	shotKeys = keys
	return keys, nil
}

// ProveShot proves a shot at (x, y) resolves to hit against the board
// described by placements, under the same trapdoor an earlier ProveBoard
// call sampled — the two proofs only bind to the same commitment if the
// trapdoor matches exactly.
func ProveShot(placements [5]*types.Placement, trapdoor *big.Int, x, y int, hit bool) (*ShotProof, error) {
	deck, err := types.NewDeck(placements)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProofGeneration, err)
	}
	board := types.NewBoardState(deck)

	shot, err := types.SerializeShot(x, y)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProofGeneration, err)
	}

	if actual := shot.Resolve(board); actual != hit {
		return nil, fmt.Errorf("%w: asserted hit does not match the board", ErrProofGeneration)
	}

	keys, err := ShotKeys()
	if err != nil {
		return nil, err
	}

	cx, cy := commitCoords(board.Bits().Lower254(), trapdoor)
	hitVal := int64(0)
	if hit {
		hitVal = 1
	}
	shotCommitment := shot.Bits().Lower254()

	assignment := &circuits.ShotCircuit{
		BoardState:     board.Bits().Lower254(),
		Trapdoor:       trapdoor,
		Cx:             cx,
		Cy:             cy,
		ShotCommitment: shotCommitment,
		Hit:            big.NewInt(hitVal),
	}

	proof, err := Prove(keys, assignment)
	if err != nil {
		return nil, err
	}

	log.Info("shot proof generated", log.F("hit", hit))
	return &ShotProof{
		Public: ShotPublicOutputs{
			Cx:             cx,
			Cy:             cy,
			ShotCommitment: shotCommitment,
			Hit:            hitVal,
		},
		Proof: proof,
	}, nil
}

// VerifyShot checks proof against its claimed public outputs.
func VerifyShot(public ShotPublicOutputs, proof plonk.Proof) error {
	keys, err := ShotKeys()
	if err != nil {
		return err
	}
	publicAssignment := &circuits.ShotCircuit{
		Cx:             public.Cx,
		Cy:             public.Cy,
		ShotCommitment: public.ShotCommitment,
		Hit:            big.NewInt(public.Hit),
	}
	return Verify(keys, proof, publicAssignment)
}
