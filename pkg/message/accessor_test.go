package message

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessors(t *testing.T) {
	req := NewRequest(1, 2, 3)

	index, err := PieceIndex(req)
	require.NoError(t, err)
	assert.EqualValues(t, 1, index)

	begin, err := Begin(req)
	require.NoError(t, err)
	assert.EqualValues(t, 2, begin)

	length, err := Length(NewCancel(1, 2, 3))
	require.NoError(t, err)
	assert.EqualValues(t, 3, length)

	bits, err := Bits(NewBitfield([]byte{0xF0}))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xF0}, bits)

	block, err := Block(NewPiece(4, 0, nil))
	require.NoError(t, err)
	assert.NotNil(t, block)
	assert.Empty(t, block)
}

func TestWrongVariantAccess(t *testing.T) {
	block, err := Block(NewHave(5))
	assert.Nil(t, block)
	assert.True(t, errors.Is(err, ErrWrongVariant), "%v", err)
	assert.Contains(t, err.Error(), `have`)

	_, err = PieceIndex(NewChoke())
	assert.True(t, errors.Is(err, ErrWrongVariant))

	_, err = Begin(NewHave(1))
	assert.True(t, errors.Is(err, ErrWrongVariant))

	_, err = Length(NewPiece(1, 2, []byte{3}))
	assert.True(t, errors.Is(err, ErrWrongVariant))

	_, err = Bits(NewKeepAlive())
	assert.True(t, errors.Is(err, ErrWrongVariant))

	_, err = Bits(nil)
	assert.True(t, errors.Is(err, ErrWrongVariant))

	assert.False(t, IsFraming(err))
}

func TestTypeNames(t *testing.T) {
	for ty := TypeKeepAlive; ty <= TypeCancel; ty++ {
		got, err := ParseType(ty.String())
		require.NoError(t, err)
		assert.Equal(t, ty, got)
	}
	_, err := ParseType(`port`)
	assert.Error(t, err)

	_, ok := TypeKeepAlive.Marker()
	assert.False(t, ok)
	marker, ok := TypeCancel.Marker()
	assert.True(t, ok)
	assert.Equal(t, MsgCancel, marker)
	marker, _ = TypeChoke.Marker()
	assert.Equal(t, MsgChoke, marker)
}
