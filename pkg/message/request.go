package message

import (
	"encoding/binary"
	"fmt"
)

// MaxRequestLength ...
// All current implementations use 2^14 (16 kiB), and close connections
// which request an amount greater than that. The codec does not enforce it.
const MaxRequestLength = 16 << 10

// block addresses a block inside a piece.
type block struct {
	index  uint32
	begin  uint32
	length uint32
	ok     bool
}

const blockSize = 4 + 4 + 4

func (b block) marshal(buf []byte) {
	binary.BigEndian.PutUint32(buf[0:], b.index)
	binary.BigEndian.PutUint32(buf[4:], b.begin)
	binary.BigEndian.PutUint32(buf[8:], b.length)
}

func unmarshalBlock(r []byte) block {
	return block{
		index:  binary.BigEndian.Uint32(r[0:]),
		begin:  binary.BigEndian.Uint32(r[4:]),
		length: binary.BigEndian.Uint32(r[8:]),
		ok:     true,
	}
}

// Request asks the receiver for a block.
type Request struct {
	block
}

// Cancel withdraws an earlier Request.
type Cancel struct {
	block
}

var (
	_ Message = Request{}
	_ Message = Cancel{}
)

// NewRequest ...
func NewRequest(index, begin, length uint32) Request {
	return Request{block{index: index, begin: begin, length: length, ok: true}}
}

// NewCancel ...
func NewCancel(index, begin, length uint32) Cancel {
	return Cancel{block{index: index, begin: begin, length: length, ok: true}}
}

// Type ...
func (Request) Type() Type { return TypeRequest }
func (Cancel) Type() Type  { return TypeCancel }

func (Request) isMessage() {}
func (Cancel) isMessage()  {}

// Index is the piece index.
func (b block) Index() uint32 { return b.index }

// Begin is the byte offset within the piece.
func (b block) Begin() uint32 { return b.begin }

// Length is the block length in bytes.
func (b block) Length() uint32 { return b.length }

func (m Request) String() string {
	return fmt.Sprintf("request{index=%d,begin=%d,length=%d}", m.index, m.begin, m.length)
}

func (m Cancel) String() string {
	return fmt.Sprintf("cancel{index=%d,begin=%d,length=%d}", m.index, m.begin, m.length)
}
