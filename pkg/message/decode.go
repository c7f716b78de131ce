package message

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// FrameLength returns the total size, prefix included, of the message
// that starts at b. It only needs the 4 prefix bytes.
func FrameLength(b []byte) (int, error) {
	if len(b) < header {
		return 0, errors.Wrapf(ErrTruncated, "length prefix: have %d bytes, need %d", len(b), header)
	}
	return header + int(binary.BigEndian.Uint32(b)), nil
}

// Decode parses the message at the start of b and returns it along with
// the number of bytes it occupied. Bytes past the message are not read.
// Payload slices in the result are copies and do not alias b.
func Decode(b []byte) (Message, int, error) {
	n, err := FrameLength(b)
	if err != nil {
		return nil, 0, errors.Wrap(err, "decode")
	}
	l := n - header
	if l == 0 {
		return KeepAlive{}, header, nil
	}
	if len(b) < n {
		return nil, 0, errors.Wrapf(ErrTruncated, "decode: length %d, have %d payload bytes", l, len(b)-header)
	}

	marker := MsgID(b[header])
	body := b[header+1 : n]

	m, err := decodeBody(marker, l, body)
	if err != nil {
		return nil, 0, errors.Wrap(err, "decode")
	}
	return m, n, nil
}

func decodeBody(marker MsgID, l int, body []byte) (Message, error) {
	if l == 1 {
		if m, ok := statusByMarker[marker]; ok {
			return m, nil
		}
		// A bitfield for zero pieces has no bits.
		if marker == MsgBitfield {
			return NewBitfield(nil), nil
		}
		return nil, errors.Wrapf(ErrUnknownMarker, "marker %#02x at length 1", byte(marker))
	}

	switch marker {
	case MsgHave:
		if err := wantLength(`have`, l, 1+4); err != nil {
			return nil, err
		}
		return unmarshalHave(body), nil
	case MsgBitfield:
		return NewBitfield(body), nil
	case MsgRequest:
		if err := wantLength(`request`, l, 1+blockSize); err != nil {
			return nil, err
		}
		return Request{unmarshalBlock(body)}, nil
	case MsgPiece:
		if l < 1+pieceHeaderSize {
			return nil, errors.Wrapf(ErrInvalidLength, "piece: length %d, want at least %d", l, 1+pieceHeaderSize)
		}
		return unmarshalPiece(body), nil
	case MsgCancel:
		if err := wantLength(`cancel`, l, 1+blockSize); err != nil {
			return nil, err
		}
		return Cancel{unmarshalBlock(body)}, nil
	}
	return nil, errors.Wrapf(ErrUnknownMarker, "marker %#02x at length %d", byte(marker), l)
}

func wantLength(name string, got, want int) error {
	if got != want {
		return errors.Wrapf(ErrInvalidLength, "%s: length %d, want %d", name, got, want)
	}
	return nil
}
