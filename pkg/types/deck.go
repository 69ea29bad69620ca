package types

import "fmt"

// Placement describes an optional ship placement, indexed by ShipKind
// position in Kinds, as accepted by the Prover API (§6).
type Placement struct {
	X, Y int
	Z    bool
}

// Deck holds at most one ship of each canonical kind.
type Deck struct {
	ships [5]*Ship
}

// NewDeck builds a Deck from up to five optional placements, indexed in
// Kinds order ([Carrier, Battleship, Cruiser, Submarine, Destroyer]).
// A nil entry leaves that ship kind unplaced. Returns ErrShipOverlap if
// any two placed ships share a cell.
func NewDeck(placements [5]*Placement) (Deck, error) {
	var deck Deck
	occupied := Empty()
	for i, kind := range Kinds {
		p := placements[i]
		if p == nil {
			continue
		}
		ship, err := NewShip(kind, p.X, p.Y, p.Z)
		if err != nil {
			return Deck{}, fmt.Errorf("deck: %s: %w", kind.Name(), err)
		}
		bits := ship.Bits()
		if occupied.Overlaps(bits) {
			return Deck{}, fmt.Errorf("deck: %s: %w", kind.Name(), ErrShipOverlap)
		}
		occupied = occupied.Or(bits)
		shipCopy := ship
		deck.ships[i] = &shipCopy
	}
	return deck, nil
}

// Ship returns the placed ship of the given kind, or nil if unplaced.
func (d Deck) Ship(kind ShipKind) *Ship {
	if !kind.valid() {
		return nil
	}
	return d.ships[kind]
}

// Ships returns the five deck slots in Kinds order; unplaced kinds are nil.
func (d Deck) Ships() [5]*Ship {
	return d.ships
}

// OrientationCommitments returns the ten per-orientation commitments in
// the fixed wire order required by §3: [H5, V5, H4, V4, H3a, V3a, H3b,
// V3b, H2, V2].
func (d Deck) OrientationCommitments() [10]BinaryValue {
	var out [10]BinaryValue
	for i, kind := range Kinds {
		var h, v BinaryValue
		if ship := d.ships[i]; ship != nil {
			h, v = ship.HorizontalVertical()
		}
		out[2*i] = h
		out[2*i+1] = v
	}
	return out
}

// BoardState returns the OR-sum of the ten orientation commitments — the
// linearized 100-bit board.
func (d Deck) BoardState() BinaryValue {
	state := Empty()
	for _, c := range d.OrientationCommitments() {
		state = state.Or(c)
	}
	return state
}

// IsComplete reports whether all five canonical ships are placed.
func (d Deck) IsComplete() bool {
	for _, s := range d.ships {
		if s == nil {
			return false
		}
	}
	return true
}
