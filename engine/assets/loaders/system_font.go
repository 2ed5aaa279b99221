package loaders

import (
	"os"

	"golang.org/x/image/font/opentype"
)

// SystemFontLoader parses TrueType and OpenType font files.
type SystemFontLoader struct{}

func (fl *SystemFontLoader) Load(path string) (*Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	return &Asset{
		Name: assetName(path),
		Path: path,
		Type: AssetTypeSystemFont,
		Data: f,
	}, nil
}

func (fl *SystemFontLoader) Unload(asset *Asset) error {
	asset.Data = nil
	return nil
}
