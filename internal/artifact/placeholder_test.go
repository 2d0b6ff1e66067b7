package artifact

import (
	"bytes"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	data, err := Render(64)
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())

	_, err = Render(0)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Run("renders the built-in image when no file is configured", func(t *testing.T) {
		p, err := Load("")
		require.NoError(t, err)
		assert.NotEmpty(t, p.Bytes())
	})

	t.Run("reads a configured file", func(t *testing.T) {
		data, err := Render(16)
		require.NoError(t, err)
		path := filepath.Join(t.TempDir(), "override.jpg")
		require.NoError(t, os.WriteFile(path, data, 0644))

		p, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, data, p.Bytes())
	})

	t.Run("rejects files that are not images", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.jpg")
		require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.jpg"))
		assert.Error(t, err)
	})
}
