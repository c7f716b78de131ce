package message

import (
	"fmt"
	"math/bits"
)

// Bitfield is a byte array (bitmap) that tells which pieces a peer has.
// One bit per piece, most significant bit of the first byte is piece 0.
// Spare bits in the last byte are zero.
type Bitfield struct {
	bits []byte
}

var _ Message = Bitfield{}

// NewBitfield copies b. A nil b yields an empty bitfield.
func NewBitfield(b []byte) Bitfield {
	c := make([]byte, len(b))
	copy(c, b)
	return Bitfield{bits: c}
}

// BitfieldFromPieces builds a bitfield for pieceCount pieces, setting the
// bit of every piece for which has returns true.
func BitfieldFromPieces(pieceCount int, has func(index int) bool) Bitfield {
	byteCount := pieceCount / 8
	if pieceCount%8 != 0 {
		byteCount++
	}
	b := make([]byte, byteCount)
	for i := 0; i < pieceCount; i++ {
		if has(i) {
			calc(i, func(byteIndex int, bitMask byte) {
				b[byteIndex] |= bitMask
			})
		}
	}
	return Bitfield{bits: b}
}

// Type ...
func (Bitfield) Type() Type { return TypeBitfield }
func (Bitfield) isMessage() {}

// Bits returns the raw bitmap. The returned slice must not be modified.
func (m Bitfield) Bits() []byte { return m.bits }

// HasPiece reports whether the bit for index is set. Indexes outside
// the bitmap are reported as missing.
func (m Bitfield) HasPiece(index int) (has bool) {
	if index < 0 || index/8 >= len(m.bits) {
		return false
	}
	calc(index, func(byteIndex int, bitMask byte) {
		has = m.bits[byteIndex]&bitMask == bitMask
	})
	return
}

// Count returns the number of set bits.
func (m Bitfield) Count() int {
	n := 0
	for _, b := range m.bits {
		n += bits.OnesCount8(b)
	}
	return n
}

// Complete indicates that all of pieceCount pieces are set.
// Spare bits past pieceCount are ignored.
func (m Bitfield) Complete(pieceCount int) bool {
	if pieceCount <= 0 {
		return true
	}
	byteCount := (pieceCount + 7) / 8
	if len(m.bits) < byteCount {
		return false
	}
	for i := 0; i < byteCount-1; i++ {
		if m.bits[i] != 0xFF {
			return false
		}
	}

	bitsRemain := uint(byteCount*8 - pieceCount)
	lastByte := m.bits[byteCount-1]
	return lastByte|(0xFF>>(8-bitsRemain)) == 0xFF
}

func (m Bitfield) String() string {
	return fmt.Sprintf("bitfield{bytes=%d,set=%d}", len(m.bits), m.Count())
}

func calc(index int, fn func(byteIndex int, bitMask byte)) {
	byteIndex := index / 8
	bitMask := byte(1 << (7 - index%8))
	fn(byteIndex, bitMask)
}
