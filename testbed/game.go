/*
This is an example of application that will use the
engine package to test things out
*/
package testbed

import (
	"github.com/spaghettifunk/nova/engine"
	"github.com/spaghettifunk/nova/engine/scene"
)

type TestGame struct {
	*engine.Game
}

func NewTestGame() *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: &engine.ApplicationConfig{
				StartPosX:   100,
				StartPosY:   100,
				StartWidth:  1280,
				StartHeight: 720,
				Name:        "Nova Game Engine",
				AssetsDir:   "assets",
				SleepMillis: 10,
				ShowFPS:     true,
				LogLevel:    "debug",
			},
		},
	}

	tg.FnOnStart = tg.OnStart
	tg.FnOnShutDown = tg.OnShutDown

	return tg
}

func (tg *TestGame) OnStart(controller *scene.Controller) error {
	controller.AddScene(NewTitleScene())
	controller.AddScene(NewPlayingScene())
	controller.SetCurrentScene(titleSceneName)
	return nil
}

func (tg *TestGame) OnShutDown() error {
	return nil
}
