// Package types holds the in-memory value objects used to turn deck
// placements and shots into the bitfields the circuit layer witnesses.
package types

import "errors"

var (
	// ErrCoordinateOutOfBounds is returned when an x or y coordinate falls
	// outside [0, BoardDimension).
	ErrCoordinateOutOfBounds = errors.New("types: coordinate out of bounds")
	// ErrShipOutOfBounds is returned when a ship's placement would extend
	// past the edge of the board.
	ErrShipOutOfBounds = errors.New("types: ship placement out of bounds")
	// ErrShipOverlap is returned when two ships in a deck occupy a common
	// cell.
	ErrShipOverlap = errors.New("types: ship placement overlaps another ship")
	// ErrInvalidShipKind is returned when a ShipKind outside the canonical
	// fleet is used.
	ErrInvalidShipKind = errors.New("types: invalid ship kind")
	// ErrInvalidHitBit is returned when an asserted hit value is not 0 or 1.
	ErrInvalidHitBit = errors.New("types: hit bit must be 0 or 1")
	// ErrTooManyBits is returned when BinaryValue construction is asked to
	// set a negative bit index or one of the two reserved top bits (index
	// Width-2 or above).
	ErrTooManyBits = errors.New("types: bit index exceeds container width")
)
