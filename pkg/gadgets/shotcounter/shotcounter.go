// Package shotcounter implements the §4.5 gadget: given a board bitfield
// and a shot bitfield (both already boolean-constrained), prove the shot
// fires exactly one cell and that cell's hit status matches an asserted
// bit h.
package shotcounter

import (
	"github.com/consensys/gnark/frontend"

	"github.com/zkships/core/pkg/gadgets/boolops"
)

// BoardSize is the number of cells board and shot must each carry.
const BoardSize = 100

// Verify asserts h is boolean, that shot sets exactly one cell, and that
// the sum of board[i]*shot[i] across all cells equals h.
func Verify(api frontend.API, board, shot []frontend.Variable, h frontend.Variable) {
	if len(board) != BoardSize || len(shot) != BoardSize {
		panic("shotcounter: board and shot must each carry BoardSize cells")
	}
	api.AssertIsBoolean(h)

	shotSum := frontend.Variable(0)
	hitSum := frontend.Variable(0)
	for i := 0; i < BoardSize; i++ {
		shotSum = api.Add(shotSum, shot[i])
		hitSum = api.Add(hitSum, boolops.And(api, board[i], shot[i]))
	}

	api.AssertIsEqual(shotSum, 1)
	api.AssertIsEqual(hitSum, h)
}
