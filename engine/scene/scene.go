// Package scene provides the cooperative lifecycle layer of the engine:
// the Scene interface implemented by every game screen (title screen, pause
// screen, game world, ...) and the Controller that decides which scene
// receives the game loop's per-frame calls.
package scene

import (
	"image/draw"

	"github.com/spaghettifunk/nova/engine/core"
	"github.com/spaghettifunk/nova/engine/input"
)

// Scene is a single swappable game state. Concrete scenes embed BaseScene
// for the name and controller bookkeeping and implement the lifecycle and
// game-loop hooks on top.
//
// A scene moves through: unattached -> attached (inactive) -> active ->
// attached (inactive) -> ... -> unattached. Enter and Exit may be invoked
// any number of times while attached.
type Scene interface {
	// Load prepares scene-specific data (images, sounds, objects). The
	// controller invokes it once, right before the scene is first entered.
	Load()
	// Unload disposes the scene-specific data. The controller invokes it
	// when a loaded scene is removed.
	Unload()

	// Enter is invoked when this scene becomes the active scene.
	Enter()
	// Exit is invoked when this scene stops being the active scene.
	Exit()

	// ProcessInputs lets the active scene react to the keyboard. delta is
	// the elapsed seconds since the previous frame.
	ProcessInputs(delta float64, keys *input.Keyboard)
	// Update advances the active scene's game state by delta seconds.
	Update(delta float64)
	// Render draws the active scene onto the current frame.
	Render(frame draw.Image)

	// OnShutDown gives the active scene a last chance to save or clean up
	// when the game ends. Invoked exactly once, at shutdown.
	OnShutDown()

	Name() string
	SetName(name string)
	IsNamed(name string) bool

	base() *BaseScene
}

// BaseScene carries the name and the non-owning back-reference to the
// Controller a scene belongs to. Concrete scenes embed it.
type BaseScene struct {
	name       string
	controller *Controller

	// Set by the controller once Load has run, cleared again on Unload.
	loaded bool
}

func NewBaseScene(name string) BaseScene {
	return BaseScene{name: name}
}

// Controller returns the controller this scene is attached to, or nil.
// Scenes use it to hand control to another scene, for example when the
// title screen advances to the game.
func (s *BaseScene) Controller() *Controller {
	return s.controller
}

// Keyboard returns the keyboard device of the attached controller, or nil
// when the scene is unattached.
func (s *BaseScene) Keyboard() *input.Keyboard {
	if s.controller == nil {
		return nil
	}
	return s.controller.Keyboard()
}

// Screen returns the screen of the attached controller, or nil when the
// scene is unattached.
func (s *BaseScene) Screen() *core.Screen {
	if s.controller == nil {
		return nil
	}
	return s.controller.Screen()
}

func (s *BaseScene) Name() string {
	return s.name
}

func (s *BaseScene) SetName(name string) {
	s.name = name
}

func (s *BaseScene) IsNamed(name string) bool {
	return s.name != "" && s.name == name
}

func (s *BaseScene) base() *BaseScene {
	return s
}

// attachController stores the back-reference when the scene is added to a
// controller. A scene belongs to at most one controller: attaching the same
// controller again is a no-op, attaching a different one first removes the
// scene from the old controller.
func (s *BaseScene) attachController(c *Controller) {
	if s.controller == c {
		return
	}
	if s.controller != nil {
		s.controller.removeByBase(s)
	}
	s.controller = c
}

// detachController clears the back-reference, but only if the given
// controller is the one this scene is attached to.
func (s *BaseScene) detachController(c *Controller) {
	if s.controller == c {
		s.controller = nil
	}
}

// Default no-op hooks so that minimal scenes only implement what they need.
func (s *BaseScene) Load()       {}
func (s *BaseScene) Unload()     {}
func (s *BaseScene) Enter()      {}
func (s *BaseScene) Exit()       {}
func (s *BaseScene) OnShutDown() {}

func (s *BaseScene) ProcessInputs(delta float64, keys *input.Keyboard) {}
func (s *BaseScene) Update(delta float64)                              {}
func (s *BaseScene) Render(frame draw.Image)                           {}
