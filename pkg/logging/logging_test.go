package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(buf, `warn`)
	require.NoError(t, err)

	log.Info().Msg(`hidden`)
	log.Warn().Str(`peer`, `127.0.0.1:6881`).Msg(`shown`)

	assert.NotContains(t, buf.String(), `hidden`)
	assert.Contains(t, buf.String(), `shown`)
	assert.Contains(t, buf.String(), `127.0.0.1:6881`)
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, `loud`)
	assert.Error(t, err)
}
