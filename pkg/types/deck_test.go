package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scenario1 is scenario #1 from §8 of the specification.
func scenario1() [5]*Placement {
	return [5]*Placement{
		{X: 3, Y: 3, Z: true},
		{X: 5, Y: 4, Z: false},
		{X: 0, Y: 1, Z: false},
		{X: 0, Y: 5, Z: true},
		{X: 6, Y: 1, Z: false},
	}
}

func TestNewDeckValidPlacement(t *testing.T) {
	deck, err := NewDeck(scenario1())
	require.NoError(t, err)
	require.True(t, deck.IsComplete())

	commitments := deck.OrientationCommitments()
	// Carrier is vertical, so H5 is zero and V5 is not.
	require.True(t, commitments[0].IsZero())
	require.False(t, commitments[1].IsZero())

	state := deck.BoardState()
	require.Equal(t, 5+4+3+3+2, state.PopCount())
}

func TestNewDeckRejectsOverlap(t *testing.T) {
	placements := scenario1()
	// Relocate Cruiser onto Destroyer's cells: Destroyer occupies (6,1)-(7,1).
	placements[2] = &Placement{X: 4, Y: 1, Z: false}
	_, err := NewDeck(placements)
	require.ErrorIs(t, err, ErrShipOverlap)
}

func TestNewDeckAllowsPartialPlacement(t *testing.T) {
	placements := [5]*Placement{{X: 0, Y: 0, Z: false}, nil, nil, nil, nil}
	deck, err := NewDeck(placements)
	require.NoError(t, err)
	require.False(t, deck.IsComplete())
	require.NotNil(t, deck.Ship(Carrier))
	require.Nil(t, deck.Ship(Battleship))
}

func TestOrientationCommitmentOrder(t *testing.T) {
	deck, err := NewDeck(scenario1())
	require.NoError(t, err)
	commitments := deck.OrientationCommitments()
	require.Len(t, commitments, 10)

	// Order is [H5, V5, H4, V4, H3a, V3a, H3b, V3b, H2, V2]. Battleship is
	// horizontal in scenario1, so H4 (index 2) is non-zero, V4 (index 3)
	// is zero.
	require.False(t, commitments[2].IsZero())
	require.True(t, commitments[3].IsZero())
}
