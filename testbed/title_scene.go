package testbed

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/spaghettifunk/nova/engine/input"
	"github.com/spaghettifunk/nova/engine/scene"
)

const titleSceneName = "title"

// TitleScene waits for the player to press enter, then switches over to
// the playing scene.
type TitleScene struct {
	scene.BaseScene

	blinkTimer float64
	showPrompt bool
}

func NewTitleScene() *TitleScene {
	return &TitleScene{
		BaseScene:  scene.NewBaseScene(titleSceneName),
		showPrompt: true,
	}
}

func (s *TitleScene) Enter() {
	s.blinkTimer = 0
	s.showPrompt = true
}

func (s *TitleScene) ProcessInputs(delta float64, keys *input.Keyboard) {
	if keys.KeyDownOnce(input.KEY_ENTER) {
		s.Controller().SetCurrentScene(playingSceneName)
	}
}

func (s *TitleScene) Update(delta float64) {
	s.blinkTimer += delta
	if s.blinkTimer >= 0.5 {
		s.blinkTimer -= 0.5
		s.showPrompt = !s.showPrompt
	}
}

func (s *TitleScene) Render(frame draw.Image) {
	bounds := frame.Bounds()
	draw.Draw(frame, bounds, image.NewUniform(color.RGBA{B: 40, A: 255}), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  frame,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(bounds.Dx()/2-60, bounds.Dy()/2),
	}
	d.DrawString("NOVA TESTBED")

	if s.showPrompt {
		d.Dot = fixed.P(bounds.Dx()/2-80, bounds.Dy()/2+30)
		d.DrawString("press enter to start")
	}
}
