// Package boolops provides small boolean-arithmetic helpers shared by the
// bit-level gadgets (Transpose, ShotCounter).
// These mirror the per-bit And/Not/Xor helpers a GF(2) circuit builds on,
// generalized to the SNARK's native scalar field: a boolean-constrained
// frontend.Variable is still either 0 or 1, so the same identities apply,
// just evaluated in F_r instead of F_2.
package boolops

import "github.com/consensys/gnark/frontend"

// And returns a*b. Valid as a boolean AND only when both a and b are
// already constrained boolean by the caller. shotcounter.Verify uses this
// for each cell's board[i]*shot[i] hit term.
func And(api frontend.API, a, b frontend.Variable) frontend.Variable {
	return api.Mul(a, b)
}

// Xor returns a+b-2ab, the boolean XOR of two already-boolean variables.
func Xor(api frontend.API, a, b frontend.Variable) frontend.Variable {
	sum := api.Add(a, b)
	return api.Sub(sum, api.Mul(2, api.Mul(a, b)))
}

// SumCellwise adds a set of equal-length boolean vectors position by
// position, without asserting booleanity of the result — the caller
// constrains that separately (Transpose's non-overlap check is exactly
// this: sum ten orientation vectors, then assert each cell is boolean).
func SumCellwise(api frontend.API, vectors ...[]frontend.Variable) []frontend.Variable {
	if len(vectors) == 0 {
		return nil
	}
	n := len(vectors[0])
	out := make([]frontend.Variable, n)
	for i := 0; i < n; i++ {
		acc := frontend.Variable(0)
		for _, v := range vectors {
			acc = api.Add(acc, v[i])
		}
		out[i] = acc
	}
	return out
}
