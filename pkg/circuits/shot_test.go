package circuits_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/test"

	"github.com/zkships/core/pkg/circuits"
	"github.com/zkships/core/pkg/types"
)

func shotWitness(t *testing.T, placements [5]*types.Placement, trapdoor int64, shotX, shotY int, hit int64) circuits.ShotCircuit {
	t.Helper()
	deck, err := types.NewDeck(placements)
	if err != nil {
		t.Fatalf("building deck: %v", err)
	}
	board := types.NewBoardState(deck)

	shot, err := types.SerializeShot(shotX, shotY)
	if err != nil {
		t.Fatalf("serializing shot: %v", err)
	}

	r := big.NewInt(trapdoor)
	cx, cy := commitmentCoords(board.Bits().Lower254(), r)

	return circuits.ShotCircuit{
		BoardState:     board.Bits().Lower254(),
		Trapdoor:       r,
		ShotCommitment: shot.Bits().Lower254(),
		Cx:             cx,
		Cy:             cy,
		Hit:            big.NewInt(hit),
	}
}

// TestShotCircuitAcceptsHit is scenario #5: shot=(3,5) against scenario
// #1's deck is a hit (the Carrier occupies (3,3)-(3,7) vertically).
func TestShotCircuitAcceptsHit(t *testing.T) {
	assert := test.NewAssert(t)
	witness := shotWitness(t, scenario1(), 9001, 3, 5, 1)
	assert.ProverSucceeded(&circuits.ShotCircuit{}, &witness, test.WithCurves(ecc.BN254))
}

func TestShotCircuitRejectsWrongHitBit(t *testing.T) {
	assert := test.NewAssert(t)
	witness := shotWitness(t, scenario1(), 9001, 3, 5, 0)
	assert.ProverFailed(&circuits.ShotCircuit{}, &witness, test.WithCurves(ecc.BN254))
}

func TestShotCircuitRejectsWrongShotClaimedHit(t *testing.T) {
	assert := test.NewAssert(t)
	// (4,3) is not occupied by scenario1's Carrier or any other ship.
	witness := shotWitness(t, scenario1(), 9001, 4, 3, 1)
	assert.ProverFailed(&circuits.ShotCircuit{}, &witness, test.WithCurves(ecc.BN254))
}

func TestShotCircuitAcceptsMiss(t *testing.T) {
	assert := test.NewAssert(t)
	witness := shotWitness(t, scenario1(), 9001, 4, 3, 0)
	assert.ProverSucceeded(&circuits.ShotCircuit{}, &witness, test.WithCurves(ecc.BN254))
}
