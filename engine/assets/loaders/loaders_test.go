package loaders

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetTypeString(t *testing.T) {
	assert.Equal(t, "image", AssetTypeImage.String())
	assert.Equal(t, "bitmap font", AssetTypeBitmapFont.String())
	assert.Equal(t, "system font", AssetTypeSystemFont.String())
	assert.Equal(t, "sound", AssetTypeSound.String())
	assert.Equal(t, "none", AssetTypeNone.String())
	assert.Equal(t, "none", AssetType(42).String())
}

func TestAssetName(t *testing.T) {
	assert.Equal(t, "hero", assetName("sprites/hero.png"))
	assert.Equal(t, "hero", assetName("hero.png"))
	assert.Equal(t, "hero", assetName("hero"))
	assert.Equal(t, "hero.walk", assetName("sprites/hero.walk.png"))
}

func TestImageLoaderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hero.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 3))))
	require.NoError(t, f.Close())

	loader := &ImageLoader{}
	asset, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hero", asset.Name)
	assert.Equal(t, AssetTypeImage, asset.Type)
	img, ok := asset.Data.(image.Image)
	require.True(t, ok)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())

	require.NoError(t, loader.Unload(asset))
	assert.Nil(t, asset.Data)
}

func TestImageLoaderRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := (&ImageLoader{}).Load(path)
	assert.Error(t, err)
}

func TestImageLoaderMissingFile(t *testing.T) {
	_, err := (&ImageLoader{}).Load(filepath.Join(t.TempDir(), "absent.png"))
	assert.Error(t, err)
}

func TestSystemFontLoaderRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttf")
	require.NoError(t, os.WriteFile(path, []byte("not a font"), 0o644))

	_, err := (&SystemFontLoader{}).Load(path)
	assert.Error(t, err)
}

func TestBitmapFontLoaderMissingFile(t *testing.T) {
	_, err := (&BitmapFontLoader{}).Load(filepath.Join(t.TempDir(), "absent.fnt"))
	assert.Error(t, err)
}

func TestSoundLoaderMissingFile(t *testing.T) {
	_, err := (&SoundLoader{}).Load(filepath.Join(t.TempDir(), "absent.wav"))
	assert.Error(t, err)
}
