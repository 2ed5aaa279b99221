package engine

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/nova/engine/core"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32 `toml:"start_pos_x"`
	// Window starting position y axis, if applicable.
	StartPosY uint32 `toml:"start_pos_y"`
	// Window starting width, if applicable.
	StartWidth uint32 `toml:"start_width"`
	// Window starting height, if applicable.
	StartHeight uint32 `toml:"start_height"`
	// The application name used in windowing, if applicable.
	Name string `toml:"name"`
	// Directory indexed by the asset manager.
	AssetsDir string `toml:"assets_dir"`
	// Time given back to the OS at the end of each frame, in milliseconds.
	SleepMillis uint32 `toml:"sleep_millis"`
	// Draw the frame rate in the corner of every frame.
	ShowFPS  bool   `toml:"show_fps"`
	LogLevel string `toml:"log_level"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		StartPosX:   100,
		StartPosY:   100,
		StartWidth:  uint32(core.DefaultWindowWidth),
		StartHeight: uint32(core.DefaultWindowHeight),
		Name:        "Nova Game Engine",
		AssetsDir:   "assets",
		SleepMillis: 10,
		LogLevel:    "info",
	}
}

// LoadApplicationConfig reads a TOML config file. Fields missing from the
// file keep their default values.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	cfg := DefaultApplicationConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
