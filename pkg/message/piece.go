package message

import (
	"encoding/binary"
	"fmt"
)

// Piece delivers a block of a piece.
type Piece struct {
	index uint32
	begin uint32
	block []byte
}

var _ Message = Piece{}

// pieceHeaderSize is index and begin.
const pieceHeaderSize = 4 + 4

// NewPiece copies data. A nil data yields an empty block.
func NewPiece(index, begin uint32, data []byte) Piece {
	b := make([]byte, len(data))
	copy(b, data)
	return Piece{index: index, begin: begin, block: b}
}

// Type ...
func (Piece) Type() Type { return TypePiece }
func (Piece) isMessage() {}

// Index is the piece index.
func (m Piece) Index() uint32 { return m.index }

// Begin is the byte offset of the block within the piece.
func (m Piece) Begin() uint32 { return m.begin }

// Block returns the block data. The returned slice must not be modified.
func (m Piece) Block() []byte { return m.block }

func (m Piece) String() string {
	return fmt.Sprintf("piece{index=%d,begin=%d,block=%d}", m.index, m.begin, len(m.block))
}

func (m Piece) marshal(buf []byte) {
	binary.BigEndian.PutUint32(buf[0:], m.index)
	binary.BigEndian.PutUint32(buf[4:], m.begin)
	copy(buf[8:], m.block)
}

// unmarshalPiece expects at least pieceHeaderSize bytes.
func unmarshalPiece(r []byte) Piece {
	return NewPiece(
		binary.BigEndian.Uint32(r[0:]),
		binary.BigEndian.Uint32(r[4:]),
		r[pieceHeaderSize:],
	)
}
