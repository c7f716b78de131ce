package record

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movsb/peerwire/pkg/message"
)

func TestRecordRoundTrip(t *testing.T) {
	msgs := []message.Message{
		message.NewKeepAlive(),
		message.NewChoke(),
		message.NewHave(5),
		message.NewBitfield([]byte{0xFF, 0x00}),
		message.NewRequest(1, 16384, 16384),
		message.NewCancel(1, 16384, 16384),
		message.NewPiece(2, 0, []byte{0xCA, 0xFE}),
	}
	for _, format := range []string{FormatYAML, FormatBencode} {
		for _, m := range msgs {
			t.Run(format+`/`+m.Type().String(), func(t *testing.T) {
				rec, err := FromMessage(m)
				require.NoError(t, err)

				buf := &bytes.Buffer{}
				require.NoError(t, Marshal(buf, format, rec))

				got, err := Unmarshal(buf, format)
				require.NoError(t, err)
				assert.Equal(t, rec, got)

				back, err := got.Message()
				require.NoError(t, err)
				assert.Equal(t, m, back)
			})
		}
	}
}

func TestRecordYAML(t *testing.T) {
	rec, err := FromMessage(message.NewBitfield([]byte{0xFF, 0x00}))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, Marshal(buf, FormatYAML, rec))
	assert.Equal(t, "type: bitfield\nbits: ff00\nsize: 7\n", buf.String())
}

func TestRecordErrors(t *testing.T) {
	_, err := Record{Type: `port`}.Message()
	assert.Error(t, err)

	_, err = Record{Type: `piece`, Block: `zz`}.Message()
	assert.Error(t, err)

	_, err = Unmarshal(strings.NewReader(`type: have`), `json`)
	assert.Error(t, err)

	assert.Error(t, Marshal(&bytes.Buffer{}, `json`, Record{}))
}
