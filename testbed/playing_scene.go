package testbed

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/spaghettifunk/nova/engine/audio"
	"github.com/spaghettifunk/nova/engine/input"
	"github.com/spaghettifunk/nova/engine/math"
	"github.com/spaghettifunk/nova/engine/object"
	"github.com/spaghettifunk/nova/engine/scene"
)

const playingSceneName = "playing"

const playerSpeed = 300.0

// PlayingScene moves a player square around the screen and runs a looping
// marker animation in the corner. Space fires a sound effect when the
// asset is present.
type PlayingScene struct {
	scene.BaseScene

	player    *player
	marker    *object.Animation
	fireSound *audio.Sound
}

type player struct {
	object.Base
	dx, dy float64
}

func (p *player) Update(delta float64) {
	p.SetPosition(p.X()+p.dx*delta, p.Y()+p.dy*delta)
}

func (p *player) Render(frame draw.Image) {
	b := p.Bounds()
	rect := image.Rect(int(b.X()), int(b.Y()), int(b.X()+b.Width), int(b.Y()+b.Height))
	draw.Draw(frame, rect, image.NewUniform(color.RGBA{G: 200, A: 255}), image.Point{}, draw.Over)
}

func NewPlayingScene() *PlayingScene {
	return &PlayingScene{
		BaseScene: scene.NewBaseScene(playingSceneName),
	}
}

func (s *PlayingScene) Load() {
	s.player = &player{Base: object.NewBase("player")}
	s.player.SetBounds(100, 100, 32, 32)

	s.marker = object.NewAnimation(object.ModeLoop)
	s.marker.SetFrameDuration(0.25)
	for _, c := range []color.RGBA{
		{R: 255, A: 255},
		{R: 255, G: 165, A: 255},
		{R: 255, G: 255, A: 255},
	} {
		frame := image.NewRGBA(image.Rect(0, 0, 16, 16))
		draw.Draw(frame, frame.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
		s.marker.AddFrame(frame)
	}

	// Runs silent when the asset is missing.
	s.fireSound = audio.NewSound("fire", "assets/sounds/fire.wav")
	s.fireSound.Open()
}

func (s *PlayingScene) Unload() {
	if s.fireSound != nil {
		s.fireSound.Close()
	}
}

func (s *PlayingScene) ProcessInputs(delta float64, keys *input.Keyboard) {
	s.player.dx = 0
	s.player.dy = 0
	if keys.KeyDown(input.KEY_LEFT) {
		s.player.dx = -playerSpeed
	}
	if keys.KeyDown(input.KEY_RIGHT) {
		s.player.dx = playerSpeed
	}
	if keys.KeyDown(input.KEY_UP) {
		s.player.dy = -playerSpeed
	}
	if keys.KeyDown(input.KEY_DOWN) {
		s.player.dy = playerSpeed
	}

	if keys.KeyDownOnce(input.KEY_SPACE) {
		s.fireSound.Start()
	}
}

func (s *PlayingScene) Update(delta float64) {
	s.player.Update(delta)
	s.marker.Update(delta)

	// Keep the player inside the visible area.
	screen := s.Screen()
	if screen == nil {
		return
	}
	w, h := screen.Size()
	b := s.player.Bounds()
	x := math.Clamp(b.X(), 0, float64(w)-b.Width)
	y := math.Clamp(b.Y(), 0, float64(h)-b.Height)
	s.player.SetPosition(x, y)
}

func (s *PlayingScene) Render(frame draw.Image) {
	bounds := frame.Bounds()
	draw.Draw(frame, bounds, image.NewUniform(color.RGBA{R: 10, G: 10, B: 10, A: 255}), image.Point{}, draw.Src)

	s.player.Render(frame)

	if f := s.marker.CurrentFrame(); f != nil {
		r := f.Bounds().Add(image.Pt(bounds.Dx()-24, 8))
		draw.Draw(frame, r, f, f.Bounds().Min, draw.Over)
	}
}
