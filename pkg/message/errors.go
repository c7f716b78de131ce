package message

import "github.com/pkg/errors"

// Errors returned by the codec and the accessors. They are wrapped with
// context, so compare them with errors.Is.
var (
	// ErrWrongVariant means a field accessor was called on a message whose
	// variant does not carry that field. It is a programming error.
	ErrWrongVariant = errors.New("message: field not defined for this variant")

	// ErrTruncated means the input ended before the declared length.
	ErrTruncated = errors.New("message: truncated")

	// ErrInvalidLength means the declared length cannot hold the variant
	// named by the marker.
	ErrInvalidLength = errors.New("message: invalid length for marker")

	// ErrUnknownMarker means the marker byte is not known for the length.
	ErrUnknownMarker = errors.New("message: unrecognized marker")

	// ErrMissingField means a payload-bearing message was not built with
	// its constructor and has no fields to encode.
	ErrMissingField = errors.New("message: required field not set")

	// ErrUnknownType means Encode was handed a nil message.
	ErrUnknownType = errors.New("message: unknown message type")
)

// IsFraming reports whether err is a framing error: the bytes do not
// form a complete, well-sized message.
func IsFraming(err error) bool {
	return errors.Is(err, ErrTruncated) || errors.Is(err, ErrInvalidLength)
}
