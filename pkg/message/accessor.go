package message

import "github.com/pkg/errors"

// The functions below read a field from any message. They fail with
// ErrWrongVariant when the message's variant has no such field. Prefer
// a type switch when the variant is known statically.

// PieceIndex returns the piece index of a Have, Request, Cancel or Piece.
func PieceIndex(m Message) (uint32, error) {
	switch typed := m.(type) {
	case Have:
		return typed.Index(), nil
	case Request:
		return typed.Index(), nil
	case Cancel:
		return typed.Index(), nil
	case Piece:
		return typed.Index(), nil
	}
	return 0, wrongVariant(m, `piece index`)
}

// Begin returns the block offset of a Request, Cancel or Piece.
func Begin(m Message) (uint32, error) {
	switch typed := m.(type) {
	case Request:
		return typed.Begin(), nil
	case Cancel:
		return typed.Begin(), nil
	case Piece:
		return typed.Begin(), nil
	}
	return 0, wrongVariant(m, `begin`)
}

// Length returns the requested block length of a Request or Cancel.
func Length(m Message) (uint32, error) {
	switch typed := m.(type) {
	case Request:
		return typed.Length(), nil
	case Cancel:
		return typed.Length(), nil
	}
	return 0, wrongVariant(m, `length`)
}

// Bits returns the bitmap of a Bitfield.
func Bits(m Message) ([]byte, error) {
	if typed, ok := m.(Bitfield); ok {
		return typed.Bits(), nil
	}
	return nil, wrongVariant(m, `bits`)
}

// Block returns the data of a Piece.
func Block(m Message) ([]byte, error) {
	if typed, ok := m.(Piece); ok {
		return typed.Block(), nil
	}
	return nil, wrongVariant(m, `block`)
}

func wrongVariant(m Message, field string) error {
	if m == nil {
		return errors.Wrapf(ErrWrongVariant, "%s of nil message", field)
	}
	return errors.Wrapf(ErrWrongVariant, "%s of %s", field, m.Type())
}
