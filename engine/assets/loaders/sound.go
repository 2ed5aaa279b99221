package loaders

import (
	"github.com/spaghettifunk/nova/engine/audio"
)

// SoundLoader wraps wav files into playable sounds. The audio package must
// be initialized before a loaded sound can actually play.
type SoundLoader struct{}

func (sl *SoundLoader) Load(path string) (*Asset, error) {
	sound := audio.NewSound(assetName(path), path)
	if err := sound.Open(); err != nil {
		return nil, err
	}

	return &Asset{
		Name: sound.Name(),
		Path: path,
		Type: AssetTypeSound,
		Data: sound,
	}, nil
}

func (sl *SoundLoader) Unload(asset *Asset) error {
	if sound, ok := asset.Data.(*audio.Sound); ok {
		sound.Close()
	}
	asset.Data = nil
	return nil
}
