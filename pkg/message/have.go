package message

import (
	"encoding/binary"
	"fmt"
)

// Have announces that the sender now has a piece.
type Have struct {
	index uint32
	ok    bool
}

var _ Message = Have{}

// NewHave ...
func NewHave(index uint32) Have {
	return Have{index: index, ok: true}
}

// Type ...
func (Have) Type() Type { return TypeHave }
func (Have) isMessage() {}

// Index is the piece index.
func (m Have) Index() uint32 { return m.index }

func (m Have) String() string {
	return fmt.Sprintf("have{index=%d}", m.index)
}

func (m Have) marshal(buf []byte) {
	binary.BigEndian.PutUint32(buf, m.index)
}

// unmarshalHave expects exactly the 4 body bytes after the marker.
func unmarshalHave(r []byte) Have {
	return NewHave(binary.BigEndian.Uint32(r))
}
