// Package transpose implements the §4.3 gadget: combine the ten
// per-ship orientation bitfields (the raw H and V bit cells of each
// ship, 100 cells each) into a single board state, asserting that no
// two ships claim the same cell.
package transpose

import (
	"github.com/consensys/gnark/frontend"

	"github.com/zkships/core/pkg/gadgets/boolops"
)

// BoardSize is the number of cells a board-state bitfield carries.
const BoardSize = 100

// Verify sums the ten ship bitfields cell by cell and asserts the result
// is boolean at every position — two ships overlapping at a cell would
// sum to 2 or more there, which AssertIsBoolean rejects. Returns the
// composed 100-cell board state.
func Verify(api frontend.API, ships ...[]frontend.Variable) []frontend.Variable {
	if len(ships) != 10 {
		panic("transpose: expected ten ship bitfields (H/V pair per ship)")
	}
	for _, s := range ships {
		if len(s) != BoardSize {
			panic("transpose: each ship bitfield must carry BoardSize cells")
		}
	}

	board := boolops.SumCellwise(api, ships...)
	for i := range board {
		api.AssertIsBoolean(board[i])
	}
	return board
}
