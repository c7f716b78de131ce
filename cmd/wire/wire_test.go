package wire

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: `peerwire`, SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().String(`config`, ``, ``)
	root.PersistentFlags().String(`log-level`, ``, ``)
	AddCommands(root)

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDecodeHex(t *testing.T) {
	out, err := run(t, `decode`, `00000005 34 00000005`, `00000000`)
	require.NoError(t, err)
	assert.Equal(t, "- type: have\n  index: 5\n  size: 9\n- type: keep-alive\n  size: 4\n", out)
}

func TestDecodeUnknownMarker(t *testing.T) {
	_, err := run(t, `decode`, `0000000139`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unrecognized marker`)
}

func TestEncodeRecordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), `piece.yaml`)
	require.NoError(t, ioutil.WriteFile(path, []byte("type: piece\nindex: 1\n"), 0644))

	out, err := run(t, `encode`, path)
	require.NoError(t, err)
	assert.Equal(t, "00000009370000000100000000", strings.TrimSpace(out))
}

func TestScanCapture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, `capture.bin`)
	require.NoError(t, ioutil.WriteFile(path, []byte{
		0, 0, 0, 1, '1',
		0, 0, 0, 3, '5', 0xFF, 0x00,
	}, 0644))

	out, err := run(t, `scan`, `--workers`, `2`, path)
	require.NoError(t, err)
	assert.Equal(t, "- type: unchoke\n  size: 5\n- type: bitfield\n  bits: ff00\n  size: 7\n", out)
}

func TestConvertToBencode(t *testing.T) {
	path := filepath.Join(t.TempDir(), `have.yaml`)
	require.NoError(t, ioutil.WriteFile(path, []byte("type: have\nindex: 5\n"), 0644))

	out, err := run(t, `convert`, path)
	require.NoError(t, err)
	assert.Equal(t, `d5:indexi5e4:type4:havee`, out)

	_, err = run(t, `convert`, `--to`, `json`, path)
	assert.Error(t, err)
}

func TestReadStream(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, `stream.bin`)
	require.NoError(t, ioutil.WriteFile(path, []byte{
		0, 0, 0, 0,
		0, 0, 0, 5, '4', 0, 0, 0, 7,
	}, 0644))

	out, err := run(t, `read`, path)
	require.NoError(t, err)
	assert.Equal(t, "- type: keep-alive\n  size: 4\n- type: have\n  index: 7\n  size: 9\n", out)
}

func TestReadStreamTooLarge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, `stream.bin`)
	require.NoError(t, ioutil.WriteFile(path, []byte{0, 0, 0x10, 0, '7'}, 0644))
	cfg := filepath.Join(dir, `peerwire.toml`)
	require.NoError(t, ioutil.WriteFile(cfg, []byte("max_message_length = 1024\n"), 0644))

	_, err := run(t, `--config`, cfg, `read`, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `too large`)
}
