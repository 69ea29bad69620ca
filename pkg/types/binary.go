package types

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Width is the number of bits held by a BinaryValue. It comfortably covers
// the BN254 scalar field (≈254 bits): the top two bits are always zero so
// every BinaryValue is below 2^254. The modulus itself is slightly below
// 2^254, so a value with bit 253 set can still reach or exceed it.
const Width = 256

// BinaryValue is a little-endian bit container: bit 0 is the least
// significant bit. It backs every bitfield in the system — ship
// orientation commitments, the composed board state, and shots.
//
// Invariant: Bits[254] and Bits[255] are always false. Nothing in this
// package ever sets them; constructors and setters that could
// (FromBytes, FromBitIndices, SetBit) reject inputs that would.
type BinaryValue struct {
	bits [Width]bool
}

// Empty returns the all-zero BinaryValue.
func Empty() BinaryValue {
	return BinaryValue{}
}

// FromUint64 builds a BinaryValue from a small non-negative integer.
func FromUint64(v uint64) BinaryValue {
	var bv BinaryValue
	for i := 0; i < 64; i++ {
		bv.bits[i] = (v>>uint(i))&1 == 1
	}
	return bv
}

// FromBytes builds a BinaryValue from a 32-byte little-endian repr, as
// produced by Bytes. Returns ErrTooManyBits if either reserved top bit is
// set.
func FromBytes(repr [32]byte) (BinaryValue, error) {
	var bv BinaryValue
	for i := 0; i < Width; i++ {
		byteIdx, bitIdx := i/8, uint(i%8)
		if repr[byteIdx]&(1<<bitIdx) != 0 {
			bv.bits[i] = true
		}
	}
	if bv.bits[Width-1] || bv.bits[Width-2] {
		return BinaryValue{}, ErrTooManyBits
	}
	return bv, nil
}

// FromFieldElement builds a BinaryValue from a base-field element by
// decomposing its canonical little-endian bit representation.
func FromFieldElement(e *fr.Element) BinaryValue {
	var repr [32]byte
	asBig := new(big.Int)
	e.BigInt(asBig)
	asBig.FillBytes(repr[:]) // big-endian fill
	reverse(repr[:])
	bv, err := FromBytes(repr)
	if err != nil {
		// A canonical field element is always < the modulus, which is
		// below 2^254, so the top two bits can never be set.
		panic("types: field element decomposed into out-of-range bits")
	}
	return bv
}

// FromBitIndices builds a BinaryValue with exactly the given bit indices
// set. Returns ErrTooManyBits if any index is >= Width-2 (the reserved
// top two bits).
func FromBitIndices(indices ...int) (BinaryValue, error) {
	var bv BinaryValue
	for _, idx := range indices {
		if idx < 0 || idx >= Width-2 {
			return BinaryValue{}, ErrTooManyBits
		}
		bv.bits[idx] = true
	}
	return bv, nil
}

// Bit returns the value of bit i.
func (bv BinaryValue) Bit(i int) bool {
	return bv.bits[i]
}

// SetBit sets bit i to true. Returns ErrTooManyBits if i is reserved.
func (bv *BinaryValue) SetBit(i int) error {
	if i < 0 || i >= Width-2 {
		return ErrTooManyBits
	}
	bv.bits[i] = true
	return nil
}

// IsZero reports whether every bit is unset.
func (bv BinaryValue) IsZero() bool {
	for _, b := range bv.bits {
		if b {
			return false
		}
	}
	return true
}

// Or returns the bitwise OR of bv and other.
func (bv BinaryValue) Or(other BinaryValue) BinaryValue {
	var out BinaryValue
	for i := range bv.bits {
		out.bits[i] = bv.bits[i] || other.bits[i]
	}
	return out
}

// Overlaps reports whether bv and other share any set bit.
func (bv BinaryValue) Overlaps(other BinaryValue) bool {
	for i := range bv.bits {
		if bv.bits[i] && other.bits[i] {
			return true
		}
	}
	return false
}

// PopCount returns the number of set bits.
func (bv BinaryValue) PopCount() int {
	n := 0
	for _, b := range bv.bits {
		if b {
			n++
		}
	}
	return n
}

// Lower128 projects the low 128 bits into a big.Int. Used where a value is
// known to fit comfortably under 2^128 (e.g. the 100-bit board state).
func (bv BinaryValue) Lower128() *big.Int {
	out := new(big.Int)
	for i := 127; i >= 0; i-- {
		out.Lsh(out, 1)
		if bv.bits[i] {
			out.SetBit(out, 0, 1)
		}
	}
	return out
}

// FieldElements projects the low B bits into an array of field elements,
// each 0 or 1 — the shape the BitDecompose gadget witnesses bit cells
// with.
func (bv BinaryValue) FieldElements(b int) []fr.Element {
	out := make([]fr.Element, b)
	for i := 0; i < b; i++ {
		if bv.bits[i] {
			out[i].SetOne()
		}
	}
	return out
}

// ToFieldElement composes the full bit container into a single base-field
// element, reducing mod the field's modulus (a no-op for any value below
// the modulus, such as the 100-bit board and shot bitfields).
func (bv BinaryValue) ToFieldElement() fr.Element {
	var e fr.Element
	e.SetBigInt(bv.Lower254())
	return e
}

// Lower254 projects the low 254 bits (everything but the two reserved
// bits) into a big.Int.
func (bv BinaryValue) Lower254() *big.Int {
	out := new(big.Int)
	for i := Width - 3; i >= 0; i-- {
		out.Lsh(out, 1)
		if bv.bits[i] {
			out.SetBit(out, 0, 1)
		}
	}
	return out
}

// Bytes serializes the container as a 32-byte little-endian repr.
func (bv BinaryValue) Bytes() [32]byte {
	var out [32]byte
	for i := 0; i < Width; i++ {
		if bv.bits[i] {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
