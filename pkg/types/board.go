package types

import "fmt"

// CellIndex returns the linear bit index (10*y+x) for a board coordinate,
// validating that x, y are both in [0, BoardDimension).
func CellIndex(x, y int) (int, error) {
	if x < 0 || x >= BoardDimension || y < 0 || y >= BoardDimension {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrCoordinateOutOfBounds, x, y)
	}
	return BoardDimension*y + x, nil
}

// BoardState wraps the 100-bit board bitfield derived from a Deck — the
// value the board commitment binds to (§3 "Board state").
type BoardState struct {
	bits BinaryValue
}

// NewBoardState derives the board state from a deck's placements.
func NewBoardState(deck Deck) BoardState {
	return BoardState{bits: deck.BoardState()}
}

// Bits returns the underlying bitfield.
func (b BoardState) Bits() BinaryValue {
	return b.bits
}

// IsOccupied reports whether the given coordinate is covered by a ship.
func (b BoardState) IsOccupied(x, y int) (bool, error) {
	idx, err := CellIndex(x, y)
	if err != nil {
		return false, err
	}
	return b.bits.Bit(idx), nil
}
