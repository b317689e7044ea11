package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wolftimer/internal/core/geometry"
)

func TestLoadPlacementMissingFile(t *testing.T) {
	file := NewPlacementFile(filepath.Join(t.TempDir(), "missing.yaml"))

	placement, err := file.LoadPlacement()
	require.NoError(t, err)
	assert.Equal(t, geometry.Placement{}, placement)
}

func TestSaveAndLoadPlacement(t *testing.T) {
	path := PlacementPath(filepath.Join(t.TempDir(), "WolfTimer"))
	file := NewPlacementFile(path)

	rect := geometry.RectFromSize(12, -40, 300, 220)
	require.NoError(t, file.SavePlacement(geometry.Capture(rect)))

	placement, err := file.LoadPlacement()
	require.NoError(t, err)
	require.NotNil(t, placement.X)
	require.NotNil(t, placement.Height)
	assert.Equal(t, 12, *placement.X)
	assert.Equal(t, -40, *placement.Y)
	assert.Equal(t, 300, *placement.Width)
	assert.Equal(t, 220, *placement.Height)
	assert.Nil(t, placement.Size)
}

func TestLoadPlacementLegacySize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover_square.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cover_square:\n  x: 5\n  y: 6\n  size: 180\n"), 0o644))

	placement, err := NewPlacementFile(path).LoadPlacement()
	require.NoError(t, err)
	assert.Nil(t, placement.Width)
	assert.Nil(t, placement.Height)
	require.NotNil(t, placement.Size)
	assert.Equal(t, 180, *placement.Size)

	desktop := geometry.RectFromSize(0, 0, 1920, 1080)
	assert.Equal(t, geometry.RectFromSize(8, 8, 180, 180), geometry.Restore(placement, desktop, 96))
}

func TestLoadPlacementInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover_square.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cover_square: [unterminated"), 0o644))

	_, err := NewPlacementFile(path).LoadPlacement()
	assert.ErrorContains(t, err, "parse placement yaml")
}
