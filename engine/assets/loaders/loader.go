// Package loaders holds the per-type asset loaders used by the asset
// manager. Each loader turns a file on disk into a ready-to-use Asset.
package loaders

// AssetType identifies which loader handles a given file.
type AssetType int

const (
	AssetTypeNone AssetType = iota
	AssetTypeImage
	AssetTypeBitmapFont
	AssetTypeSystemFont
	AssetTypeSound
)

func (t AssetType) String() string {
	switch t {
	case AssetTypeImage:
		return "image"
	case AssetTypeBitmapFont:
		return "bitmap font"
	case AssetTypeSystemFont:
		return "system font"
	case AssetTypeSound:
		return "sound"
	default:
		return "none"
	}
}

// Asset is a loaded resource. Data holds the loader-specific payload, for
// example an image.Image for images or a *audio.Sound for sounds.
type Asset struct {
	Name string
	Path string
	Type AssetType
	Data interface{}
}

// Loader loads and unloads a single asset type.
type Loader interface {
	Load(path string) (*Asset, error)
	Unload(asset *Asset) error
}
