// Package capture decodes recorded peer wire traffic: a file holding the
// bytes of one direction of a connection, messages back to back.
package capture

import (
	"context"
	"io/ioutil"
	"runtime"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/movsb/peerwire/pkg/message"
)

// Frame is the wire bytes of one message and where they start.
type Frame struct {
	Offset int
	Data   []byte
}

// Split cuts b into frames using only the length prefixes. Frames alias b.
// A trailing partial frame is an error wrapping message.ErrTruncated.
func Split(b []byte) ([]Frame, error) {
	var frames []Frame
	for off := 0; off < len(b); {
		n, err := message.FrameLength(b[off:])
		if err != nil {
			return frames, errors.Wrapf(err, "capture: offset %d", off)
		}
		if off+n > len(b) {
			return frames, errors.Wrapf(message.ErrTruncated,
				"capture: offset %d: frame of %d bytes, %d left", off, n, len(b)-off)
		}
		frames = append(frames, Frame{Offset: off, Data: b[off : off+n]})
		off += n
	}
	return frames, nil
}

// Decoder decodes frames with a bounded number of goroutines.
type Decoder struct {
	// Workers caps concurrent decodes. Zero means GOMAXPROCS.
	Workers int
	Log     zerolog.Logger
}

// DecodeAll decodes every frame and returns the messages in frame order.
// The first failure stops the remaining work.
func (d *Decoder) DecodeAll(ctx context.Context, frames []Frame) ([]message.Message, error) {
	workers := d.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	msgs := make([]message.Message, len(frames))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range frames {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, n, err := message.Decode(frames[i].Data)
			if err != nil {
				return errors.Wrapf(err, "capture: frame %d at offset %d", i, frames[i].Offset)
			}
			if n != len(frames[i].Data) {
				return errors.Errorf("capture: frame %d at offset %d: decoded %d of %d bytes",
					i, frames[i].Offset, n, len(frames[i].Data))
			}
			msgs[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.Log.Debug().Int("frames", len(frames)).Int("workers", workers).Msg("capture decoded")
	return msgs, nil
}

// ReadFile loads and splits a capture file.
func ReadFile(path string) ([]Frame, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "capture")
	}
	return Split(b)
}
