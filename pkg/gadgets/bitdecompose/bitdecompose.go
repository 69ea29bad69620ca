// Package bitdecompose is the two-directional primitive described in
// §4.1: given a field element, witness its bit decomposition; given a
// bit decomposition, compose it back into a field element. Placement,
// Transpose and ShotCounter consume the bit-cell handles this package
// produces; Pedersen consumes the composed board element.
//
// gnark's frontend.API already implements the booleanity/doubling/
// accumulation identities §4.1 describes — api.ToBinary and
// api.FromBinary are that exact chip, expressed without exposing
// halo2-style rows and columns to circuit authors. This package is a
// thin, domain-typed wrapper around them so call sites read in terms of
// "decompose a 100-bit board cell" rather than bare API calls.
package bitdecompose

import "github.com/consensys/gnark/frontend"

// Witness decomposes value into B boolean cells (num→bits), each
// equality-constrained boolean and accumulating — via doubling register
// and running sum — back to value. Panics (via the underlying API) only
// on a malformed circuit, never on witness data; a witness value that
// needs more than B bits cannot satisfy the decomposition, so proving
// fails.
func Witness(api frontend.API, value frontend.Variable, bits int) []frontend.Variable {
	return api.ToBinary(value, bits)
}

// Compose recomposes a field element from already-constrained boolean
// bit cells (bits→num). The caller is responsible for having obtained
// those cells from a context that already asserts booleanity (Witness,
// or a sum that's separately range-checked) — Compose itself does not
// re-assert it, mirroring the original chip's division of labour between
// the num2bits and bits2num directions.
func Compose(api frontend.API, bits []frontend.Variable) frontend.Variable {
	return api.FromBinary(bits...)
}
