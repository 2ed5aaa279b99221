package loaders

import (
	"github.com/fzipp/bmfont"
)

// BitmapFontLoader parses AngelCode .fnt descriptors together with their
// page images.
type BitmapFontLoader struct{}

func (fl *BitmapFontLoader) Load(path string) (*Asset, error) {
	font, err := bmfont.Load(path)
	if err != nil {
		return nil, err
	}

	return &Asset{
		Name: font.Descriptor.Info.Face,
		Path: path,
		Type: AssetTypeBitmapFont,
		Data: font,
	}, nil
}

func (fl *BitmapFontLoader) Unload(asset *Asset) error {
	asset.Data = nil
	return nil
}
