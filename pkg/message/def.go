// Package message implements the peer wire message model and its
// length-prefixed codec.
//
// A message on the wire is a 4-byte big-endian length L followed by L
// bytes of payload. A zero length is a keep-alive; otherwise the first
// payload byte is a marker identifying the variant. Markers are the ASCII
// digits '0' to '8', not the raw values 0 to 8.
package message

import "fmt"

// Message is a peer wire message. The set of implementations is closed:
// one struct type per variant, each built by its New* constructor.
type Message interface {
	Type() Type
	isMessage()
}

// MsgID is the marker byte that starts a non-empty payload.
type MsgID byte

// Known message list
const (
	MsgChoke        = MsgID('0')
	MsgUnchoke      = MsgID('1')
	MsgInterested   = MsgID('2')
	MsgUninterested = MsgID('3')
	MsgHave         = MsgID('4')
	MsgBitfield     = MsgID('5')
	MsgRequest      = MsgID('6')
	MsgPiece        = MsgID('7')
	MsgCancel       = MsgID('8')
)

// Type identifies a message variant.
type Type int

// Message types. The order matches the wire ordinal of each marker,
// shifted by one for KeepAlive which has no marker.
const (
	TypeKeepAlive Type = iota
	TypeChoke
	TypeUnchoke
	TypeInterested
	TypeUninterested
	TypeHave
	TypeBitfield
	TypeRequest
	TypePiece
	TypeCancel
)

var typeNames = [...]string{
	TypeKeepAlive:    `keep-alive`,
	TypeChoke:        `choke`,
	TypeUnchoke:      `unchoke`,
	TypeInterested:   `interested`,
	TypeUninterested: `uninterested`,
	TypeHave:         `have`,
	TypeBitfield:     `bitfield`,
	TypeRequest:      `request`,
	TypePiece:        `piece`,
	TypeCancel:       `cancel`,
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType is the inverse of Type.String.
func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if name == s {
			return Type(t), nil
		}
	}
	return 0, fmt.Errorf("message: unknown type name %q", s)
}

// Marker returns the marker byte for t. KeepAlive has none.
func (t Type) Marker() (MsgID, bool) {
	if t <= TypeKeepAlive || t > TypeCancel {
		return 0, false
	}
	return MsgID('0' + byte(t-1)), true
}

// header is the size of the length prefix.
const header = 4
