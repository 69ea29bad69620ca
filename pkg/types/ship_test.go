package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewShipRejectsOutOfBoundsCoordinate(t *testing.T) {
	_, err := NewShip(Carrier, 10, 0, false)
	require.ErrorIs(t, err, ErrCoordinateOutOfBounds)
}

func TestNewShipRejectsOverhang(t *testing.T) {
	// Cruiser (length 3) placed horizontally at x=9 would wrap off-board.
	_, err := NewShip(Cruiser, 9, 0, false)
	require.ErrorIs(t, err, ErrShipOutOfBounds)

	// Same ship placed vertically at x=9 fits fine.
	_, err = NewShip(Cruiser, 9, 0, true)
	require.NoError(t, err)
}

func TestShipCellsHorizontalAndVertical(t *testing.T) {
	h, err := NewShip(Destroyer, 3, 4, false)
	require.NoError(t, err)
	require.Equal(t, []int{43, 44}, h.Cells())

	v, err := NewShip(Destroyer, 3, 4, true)
	require.NoError(t, err)
	require.Equal(t, []int{43, 53}, v.Cells())
}

func TestHorizontalVerticalSplit(t *testing.T) {
	h, err := NewShip(Destroyer, 0, 0, false)
	require.NoError(t, err)
	hBits, vBits := h.HorizontalVertical()
	require.False(t, hBits.IsZero())
	require.True(t, vBits.IsZero())

	v, err := NewShip(Destroyer, 0, 0, true)
	require.NoError(t, err)
	hBits2, vBits2 := v.HorizontalVertical()
	require.True(t, hBits2.IsZero())
	require.False(t, vBits2.IsZero())
}

func TestShipKindLengths(t *testing.T) {
	require.Equal(t, 5, Carrier.Length())
	require.Equal(t, 4, Battleship.Length())
	require.Equal(t, 3, Cruiser.Length())
	require.Equal(t, 3, Submarine.Length())
	require.Equal(t, 2, Destroyer.Length())
}
