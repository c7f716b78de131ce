// Package peer frames messages over a byte stream.
package peer

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/movsb/peerwire/pkg/message"
)

// DefaultMaxLength bounds the payload length Recv accepts. It leaves
// room for a Piece carrying a 128 KiB block.
const DefaultMaxLength = 1 << 20

// ErrTooLarge is returned by Recv when a peer announces a payload longer
// than MaxLength. The stream is unusable afterwards.
var ErrTooLarge = errors.New("peer: message too large")

// Stream sends and receives messages over rw.
// One goroutine may Send while another calls Recv.
type Stream struct {
	// MaxLength is the largest payload length Recv accepts.
	MaxLength uint32

	// Log receives debug events.
	Log zerolog.Logger

	rw *bufio.ReadWriter
}

// NewStream ...
func NewStream(rw io.ReadWriter, log zerolog.Logger) *Stream {
	return &Stream{
		MaxLength: DefaultMaxLength,
		Log:       log,
		rw: bufio.NewReadWriter(
			bufio.NewReader(rw),
			bufio.NewWriter(rw),
		),
	}
}

// Send encodes m and flushes it.
func (c *Stream) Send(m message.Message) error {
	b, err := message.Encode(m)
	if err != nil {
		return errors.Wrap(err, "peer: send")
	}
	if _, err := c.rw.Write(b); err != nil {
		return errors.Wrap(err, "peer: send")
	}
	if err := c.rw.Flush(); err != nil {
		return errors.Wrap(err, "peer: send")
	}
	c.Log.Debug().Stringer("type", m.Type()).Int("size", len(b)).Msg("sent")
	return nil
}

// Recv reads exactly one message. A stream that ends between messages
// returns io.EOF; one that ends inside a message returns
// message.ErrTruncated.
func (c *Stream) Recv() (message.Message, error) {
	maxLength := c.MaxLength
	if maxLength == 0 {
		maxLength = DefaultMaxLength
	}

	sizeBuf := []byte{0, 0, 0, 0}
	if _, err := io.ReadFull(c.rw, sizeBuf); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, recvError(err, "size")
	}

	msgSize := binary.BigEndian.Uint32(sizeBuf)
	// keep alive
	if msgSize == 0 {
		c.Log.Debug().Msg("keep alive")
		return message.NewKeepAlive(), nil
	}
	if msgSize > maxLength {
		return nil, errors.Wrapf(ErrTooLarge, "peer: recv: length %d exceeds %d", msgSize, maxLength)
	}

	buf := make([]byte, 4+int(msgSize))
	copy(buf, sizeBuf)
	if _, err := io.ReadFull(c.rw, buf[4:]); err != nil {
		return nil, recvError(err, "msg")
	}

	m, _, err := message.Decode(buf)
	if err != nil {
		return nil, errors.Wrap(err, "peer: recv")
	}
	c.Log.Debug().Stringer("type", m.Type()).Int("size", len(buf)).Msg("received")
	return m, nil
}

func recvError(err error, what string) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.Wrapf(message.ErrTruncated, "peer: recv %s", what)
	}
	return errors.Wrapf(err, "peer: recv %s", what)
}
