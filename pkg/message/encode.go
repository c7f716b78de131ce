package message

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// payloadLength returns L, the length written in the prefix.
func payloadLength(m Message) (uint32, error) {
	switch typed := m.(type) {
	case nil:
		return 0, ErrUnknownType
	case KeepAlive:
		return 0, nil
	case Choke, Unchoke, Interested, Uninterested:
		return 1, nil
	case Have:
		if !typed.ok {
			return 0, errors.Wrap(ErrMissingField, "have: index")
		}
		return 1 + 4, nil
	case Bitfield:
		if typed.bits == nil {
			return 0, errors.Wrap(ErrMissingField, "bitfield: bits")
		}
		return 1 + uint32(len(typed.bits)), nil
	case Request:
		if !typed.ok {
			return 0, errors.Wrap(ErrMissingField, "request: index, begin, length")
		}
		return 1 + blockSize, nil
	case Cancel:
		if !typed.ok {
			return 0, errors.Wrap(ErrMissingField, "cancel: index, begin, length")
		}
		return 1 + blockSize, nil
	case Piece:
		if typed.block == nil {
			return 0, errors.Wrap(ErrMissingField, "piece: block")
		}
		return 1 + pieceHeaderSize + uint32(len(typed.block)), nil
	}
	return 0, errors.Wrapf(ErrUnknownType, "%T", m)
}

// EncodedLength returns the number of bytes Encode produces for m.
func EncodedLength(m Message) (int, error) {
	l, err := payloadLength(m)
	if err != nil {
		return 0, err
	}
	return header + int(l), nil
}

// Encode returns the wire form of m: the length prefix, the marker and
// the variant's body.
func Encode(m Message) ([]byte, error) {
	l, err := payloadLength(m)
	if err != nil {
		return nil, errors.Wrap(err, "encode")
	}

	buf := make([]byte, header+int(l))
	binary.BigEndian.PutUint32(buf, l)
	if l == 0 {
		return buf, nil
	}

	marker, _ := m.Type().Marker()
	buf[header] = byte(marker)
	body := buf[header+1:]

	switch typed := m.(type) {
	case Have:
		typed.marshal(body)
	case Bitfield:
		copy(body, typed.bits)
	case Request:
		typed.marshal(body)
	case Cancel:
		typed.marshal(body)
	case Piece:
		typed.marshal(body)
	}
	return buf, nil
}
