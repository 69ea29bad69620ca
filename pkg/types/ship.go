package types

import "fmt"

// BoardDimension is the side length of the square Battleship grid.
const BoardDimension = 10

// BoardSize is the number of cells on the board (10×10, linearized).
const BoardSize = BoardDimension * BoardDimension

// ShipKind identifies one of the five canonical fleet ships. Each kind may
// appear at most once in a Deck.
type ShipKind int

// The canonical fleet, in the order the Prover/Verifier APIs index deck
// placements by.
const (
	Carrier ShipKind = iota
	Battleship
	Cruiser
	Submarine
	Destroyer
)

// Length returns the number of cells a ship of this kind occupies.
func (k ShipKind) Length() int {
	switch k {
	case Carrier:
		return 5
	case Battleship:
		return 4
	case Cruiser, Submarine:
		return 3
	case Destroyer:
		return 2
	default:
		return 0
	}
}

// Name returns a human-readable label for the ship kind.
func (k ShipKind) Name() string {
	switch k {
	case Carrier:
		return "Carrier"
	case Battleship:
		return "Battleship"
	case Cruiser:
		return "Cruiser"
	case Submarine:
		return "Submarine"
	case Destroyer:
		return "Destroyer"
	default:
		return "Unknown"
	}
}

func (k ShipKind) valid() bool {
	return k >= Carrier && k <= Destroyer
}

// Kinds is the canonical fleet in index order: [Carrier, Battleship,
// Cruiser, Submarine, Destroyer].
var Kinds = [5]ShipKind{Carrier, Battleship, Cruiser, Submarine, Destroyer}

// Ship is a single placed ship: its kind, the coordinate of its head cell,
// and its orientation. Z=true means vertical (cells run (x, y+i)); Z=false
// means horizontal (cells run (x+i, y)).
type Ship struct {
	Kind ShipKind
	X, Y int
	Z    bool
}

// NewShip validates and constructs a Ship. It rejects coordinates outside
// [0, BoardDimension) and placements whose body would run off the board.
func NewShip(kind ShipKind, x, y int, z bool) (Ship, error) {
	if !kind.valid() {
		return Ship{}, fmt.Errorf("%w: %d", ErrInvalidShipKind, kind)
	}
	if x < 0 || x >= BoardDimension || y < 0 || y >= BoardDimension {
		return Ship{}, fmt.Errorf("%w: (%d, %d)", ErrCoordinateOutOfBounds, x, y)
	}
	length := kind.Length()
	if z {
		if y+length > BoardDimension {
			return Ship{}, fmt.Errorf("%w: %s at (%d,%d) vertical runs past row %d",
				ErrShipOutOfBounds, kind.Name(), x, y, BoardDimension-1)
		}
	} else {
		if x+length > BoardDimension {
			return Ship{}, fmt.Errorf("%w: %s at (%d,%d) horizontal runs past column %d",
				ErrShipOutOfBounds, kind.Name(), x, y, BoardDimension-1)
		}
	}
	return Ship{Kind: kind, X: x, Y: y, Z: z}, nil
}

// Cells returns the linear board indices (10*y+x) this ship occupies.
func (s Ship) Cells() []int {
	length := s.Kind.Length()
	cells := make([]int, length)
	for i := 0; i < length; i++ {
		x, y := s.X, s.Y
		if s.Z {
			y += i
		} else {
			x += i
		}
		cells[i] = BoardDimension*y + x
	}
	return cells
}

// Bits returns the 100-bit (within a 256-bit container) bitfield with this
// ship's cells set — its "orientation commitment" in the sense of §3.
func (s Ship) Bits() BinaryValue {
	bv, err := FromBitIndices(s.Cells()...)
	if err != nil {
		// Cells() only ever returns indices < BoardSize (100), well under
		// the reserved range checked by FromBitIndices.
		panic(err)
	}
	return bv
}

// HorizontalVertical returns the (H, V) orientation-commitment pair for
// this ship: the non-zero entry holds Bits(), the other is Empty().
func (s Ship) HorizontalVertical() (h, v BinaryValue) {
	if s.Z {
		return Empty(), s.Bits()
	}
	return s.Bits(), Empty()
}
