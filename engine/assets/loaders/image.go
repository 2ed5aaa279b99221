package loaders

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageLoader decodes raster images. The supported formats are registered
// through the image package's init mechanism.
type ImageLoader struct{}

func (il *ImageLoader) Load(path string) (*Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	return &Asset{
		Name: assetName(path),
		Path: path,
		Type: AssetTypeImage,
		Data: img,
	}, nil
}

func (il *ImageLoader) Unload(asset *Asset) error {
	asset.Data = nil
	return nil
}

// assetName is the file name without directory or extension.
func assetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
