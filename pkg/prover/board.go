package prover

import (
	"crypto/rand"
	"fmt"
	"math/big"

	tedwards "github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	"github.com/consensys/gnark/backend/plonk"

	"github.com/zkships/core/internal/log"
	"github.com/zkships/core/pkg/circuits"
	"github.com/zkships/core/pkg/gadgets/pedersen"
	"github.com/zkships/core/pkg/types"
)

// BoardCommitment is the public output of a board proof: the affine
// coordinates of the Pedersen commitment C = v·G_v + r·G_r.
type BoardCommitment struct {
	Cx, Cy *big.Int
}

// Bytes encodes the commitment as two 32-byte little-endian field
// elements, the wire shape §6 specifies for Cx and Cy.
func (c BoardCommitment) Bytes() (cx, cy [32]byte) {
	return feBytes(c.Cx), feBytes(c.Cy)
}

// BoardProof bundles what a prover keeps after proving a board: the
// public commitment, the opaque proof, and the trapdoor. The trapdoor
// must be kept private and reused unchanged by every later ShotCircuit
// proof against this board — reusing a *different* trapdoor would commit
// to a different point entirely, and reusing the same trapdoor across
// two different boards leaks their difference (§5).
type BoardProof struct {
	Commitment BoardCommitment
	Proof      plonk.Proof
	Trapdoor   *big.Int
}

var boardKeys *Keys

// BoardKeys runs (and memoizes) Setup for BoardCircuit.
func BoardKeys() (*Keys, error) {
	if boardKeys != nil {
		return boardKeys, nil
	}
	keys, err := Setup(&circuits.BoardCircuit{})
	if err != nil {
		return nil, err
	}
	boardKeys = keys
	return keys, nil
}

// ProveBoard builds a BoardCircuit witness from up to five ship
// placements, indexed in types.Kinds order, and proves they describe a
// complete, non-overlapping fleet.
func ProveBoard(placements [5]*types.Placement) (*BoardProof, error) {
	deck, err := types.NewDeck(placements)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProofGeneration, err)
	}
	if !deck.IsComplete() {
		return nil, fmt.Errorf("%w: deck is missing a ship", ErrProofGeneration)
	}

	keys, err := BoardKeys()
	if err != nil {
		return nil, err
	}

	trapdoor, err := sampleScalar()
	if err != nil {
		return nil, fmt.Errorf("%w: sampling trapdoor: %v", ErrProofGeneration, err)
	}

	commitments := deck.OrientationCommitments()
	board := types.NewBoardState(deck)
	cx, cy := commitCoords(board.Bits().Lower254(), trapdoor)

	assignment := &circuits.BoardCircuit{
		H5: commitments[0].Lower254(), V5: commitments[1].Lower254(),
		H4: commitments[2].Lower254(), V4: commitments[3].Lower254(),
		H3a: commitments[4].Lower254(), V3a: commitments[5].Lower254(),
		H3b: commitments[6].Lower254(), V3b: commitments[7].Lower254(),
		H2: commitments[8].Lower254(), V2: commitments[9].Lower254(),
		Trapdoor: trapdoor,
		Cx:       cx,
		Cy:       cy,
	}

	proof, err := Prove(keys, assignment)
	if err != nil {
		return nil, err
	}

	log.Info("board proof generated")
	return &BoardProof{
		Commitment: BoardCommitment{Cx: cx, Cy: cy},
		Proof:      proof,
		Trapdoor:   trapdoor,
	}, nil
}

// VerifyBoard checks proof against the claimed commitment.
func VerifyBoard(commitment BoardCommitment, proof plonk.Proof) error {
	keys, err := BoardKeys()
	if err != nil {
		return err
	}
	publicAssignment := &circuits.BoardCircuit{Cx: commitment.Cx, Cy: commitment.Cy}
	return Verify(keys, proof, publicAssignment)
}

func commitCoords(v, r *big.Int) (x, y *big.Int) {
	var gv, gr tedwards.PointAffine
	gv.X.SetBigInt(pedersen.GV.X)
	gv.Y.SetBigInt(pedersen.GV.Y)
	gr.X.SetBigInt(pedersen.GR.X)
	gr.Y.SetBigInt(pedersen.GR.Y)

	var cv, cr, sum tedwards.PointAffine
	cv.ScalarMultiplication(&gv, v)
	cr.ScalarMultiplication(&gr, r)
	sum.Add(&cv, &cr)

	x, y = new(big.Int), new(big.Int)
	sum.X.BigInt(x)
	sum.Y.BigInt(y)
	return x, y
}

func sampleScalar() (*big.Int, error) {
	curve := tedwards.GetEdwardsCurve()
	return rand.Int(rand.Reader, &curve.Order)
}

func feBytes(v *big.Int) [32]byte {
	var out [32]byte
	be := v.Bytes()
	for i, j := 0, len(be)-1; j >= 0; i, j = i+1, j-1 {
		out[i] = be[j]
	}
	return out
}
