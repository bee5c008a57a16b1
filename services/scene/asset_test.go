package scene

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func glbBytes(magic, version uint32, body int) []byte {
	data := make([]byte, glbHeaderSize+body)
	binary.LittleEndian.PutUint32(data[0:4], magic)
	binary.LittleEndian.PutUint32(data[4:8], version)
	binary.LittleEndian.PutUint32(data[8:12], uint32(len(data)))
	return data
}

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hand.glb")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadAssetAcceptsValidGLB(t *testing.T) {
	path := writeFile(t, glbBytes(glbMagic, 2, 20))

	asset, err := LoadAsset(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), asset.Version)
	assert.Len(t, asset.Data, 32)
	assert.Equal(t, []byte("glTF"), asset.Data[:4])
}

func TestLoadAssetRejectsBadFiles(t *testing.T) {
	truncated := glbBytes(glbMagic, 2, 8)
	truncated = truncated[:16]

	cases := map[string]string{
		"missing":   filepath.Join(t.TempDir(), "nope.glb"),
		"short":     writeFile(t, []byte("glT")),
		"magic":     writeFile(t, glbBytes(0x12345678, 2, 4)),
		"version":   writeFile(t, glbBytes(glbMagic, 1, 4)),
		"truncated": writeFile(t, truncated),
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadAsset(path)
			assert.ErrorIs(t, err, ErrAssetUnavailable)
		})
	}
}

func TestHandModelCachesFirstLoad(t *testing.T) {
	path := writeFile(t, glbBytes(glbMagic, 2, 4))
	model := NewHandModel(path)

	first, err := model.Load()
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))

	second, err := model.Load()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestHandModelRetriesFailedLoadAfterBackoff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hand.glb")
	clock := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	model := NewHandModel(path)
	model.now = func() time.Time { return clock }

	_, err := model.Load()
	require.ErrorIs(t, err, ErrAssetUnavailable)

	require.NoError(t, os.WriteFile(path, glbBytes(glbMagic, 2, 0), 0o644))

	_, err = model.Load()
	assert.ErrorIs(t, err, ErrAssetUnavailable, "failure is remembered until the backoff passes")

	clock = clock.Add(DefaultRetryAfter)
	asset, err := model.Load()
	require.NoError(t, err)
	assert.Len(t, asset.Data, glbHeaderSize)

	require.NoError(t, os.Remove(path))
	again, err := model.Load()
	require.NoError(t, err)
	assert.Same(t, asset, again)
}
