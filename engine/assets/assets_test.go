package assets

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/nova/engine/assets/loaders"
)

func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 2, 2))))
}

func newTestManager(t *testing.T, dir string) *AssetManager {
	t.Helper()
	am, err := NewAssetManager()
	require.NoError(t, err)
	require.NoError(t, am.Initialize(dir))
	t.Cleanup(am.Shutdown)
	return am
}

func TestDetermineAssetType(t *testing.T) {
	tests := []struct {
		path string
		want loaders.AssetType
	}{
		{"sprites/hero.png", loaders.AssetTypeImage},
		{"sprites/HERO.PNG", loaders.AssetTypeImage},
		{"photo.jpeg", loaders.AssetTypeImage},
		{"fonts/main.fnt", loaders.AssetTypeBitmapFont},
		{"fonts/main.ttf", loaders.AssetTypeSystemFont},
		{"fonts/main.otf", loaders.AssetTypeSystemFont},
		{"sounds/boom.wav", loaders.AssetTypeSound},
		{"readme.md", loaders.AssetTypeNone},
		{"noextension", loaders.AssetTypeNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, determineAssetType(tt.path), tt.path)
	}
}

func TestLoadAssetImage(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "hero.png"))
	am := newTestManager(t, dir)

	asset, err := am.LoadAsset("hero", loaders.AssetTypeImage)
	require.NoError(t, err)

	assert.Equal(t, "hero", asset.Name)
	assert.Equal(t, loaders.AssetTypeImage, asset.Type)
	img, ok := asset.Data.(image.Image)
	require.True(t, ok)
	assert.Equal(t, 2, img.Bounds().Dx())

	// Second load comes from the cache.
	again, err := am.LoadAsset("hero", loaders.AssetTypeImage)
	require.NoError(t, err)
	assert.Same(t, asset, again)
}

func TestLoadAssetNotFound(t *testing.T) {
	am := newTestManager(t, t.TempDir())

	_, err := am.LoadAsset("nope", loaders.AssetTypeImage)
	assert.Error(t, err)
}

func TestLoadAssetWrongType(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "hero.png"))
	am := newTestManager(t, dir)

	// The file exists but is indexed as an image, not a sound.
	_, err := am.LoadAsset("hero", loaders.AssetTypeSound)
	assert.Error(t, err)
}

func TestUnloadAssetDropsCache(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "hero.png"))
	am := newTestManager(t, dir)

	asset, err := am.LoadAsset("hero", loaders.AssetTypeImage)
	require.NoError(t, err)
	require.NoError(t, am.UnloadAsset(asset))
	assert.Nil(t, asset.Data)

	// A fresh load re-reads the file.
	again, err := am.LoadAsset("hero", loaders.AssetTypeImage)
	require.NoError(t, err)
	assert.NotSame(t, asset, again)
	assert.NotNil(t, again.Data)
}

func TestFileEventInvalidatesCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero.png")
	writeTestPNG(t, path)
	am := newTestManager(t, dir)

	asset, err := am.LoadAsset("hero", loaders.AssetTypeImage)
	require.NoError(t, err)

	// A write event drops the cached copy so the next load re-reads.
	am.handleFileEvent(path)
	again, err := am.LoadAsset("hero", loaders.AssetTypeImage)
	require.NoError(t, err)
	assert.NotSame(t, asset, again)
}

func TestRemoveAssetDropsIndex(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero.png")
	writeTestPNG(t, path)
	am := newTestManager(t, dir)

	_, err := am.LoadAsset("hero", loaders.AssetTypeImage)
	require.NoError(t, err)

	am.removeAsset(path)
	_, err = am.LoadAsset("hero", loaders.AssetTypeImage)
	assert.Error(t, err)
}

func TestConcurrentLoads(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "hero.png"))
	am := newTestManager(t, dir)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			asset, err := am.LoadAsset("hero", loaders.AssetTypeImage)
			assert.NoError(t, err)
			assert.NotNil(t, asset)
		}()
	}
	wg.Wait()
}

func TestShutdownIsIdempotent(t *testing.T) {
	am, err := NewAssetManager()
	require.NoError(t, err)
	require.NoError(t, am.Initialize(t.TempDir()))

	am.Shutdown()
	am.Shutdown()
}
