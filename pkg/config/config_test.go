package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), `peerwire.toml`)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(``)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.NoError(t, c.Validate())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
max_message_length = 4096
format = "bencode"
workers = 2
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.EqualValues(t, 4096, c.MaxMessageLength)
	assert.Equal(t, `bencode`, c.Format)
	assert.Equal(t, 2, c.Workers)
	assert.Equal(t, `info`, c.LogLevel)
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		`bad format`:  `format = "json"`,
		`zero length`: `max_message_length = 0`,
		`neg workers`: `workers = -1`,
		`unknown key`: `color = true`,
		`not toml`:    `format = `,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}
