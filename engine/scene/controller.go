package scene

import (
	"image/draw"

	"github.com/spaghettifunk/nova/engine/core"
	"github.com/spaghettifunk/nova/engine/input"
)

// Controller manages every scene of the game and is the middle man between
// the game loop and the active scene: the loop's per-frame calls are
// forwarded to the current scene only, and switching the current scene runs
// the exit/enter handshake.
//
// The controller owns its scene collection (insertion order, names need not
// be unique — lookup returns the first match) and holds a non-owning
// reference into it for the current scene. It is touched exclusively by the
// loop goroutine.
type Controller struct {
	scenes  []Scene
	current Scene

	keyboard *input.Keyboard
	screen   *core.Screen
}

func NewController() *Controller {
	return &Controller{}
}

// ProcessInputs forwards the input step to the current scene, handing it
// the controller's keyboard. No-op when no scene is active.
func (c *Controller) ProcessInputs(delta float64) {
	if c.current != nil {
		c.current.ProcessInputs(delta, c.keyboard)
	}
}

// Update forwards the update step to the current scene. No-op when no scene
// is active.
func (c *Controller) Update(delta float64) {
	if c.current != nil {
		c.current.Update(delta)
	}
}

// Render forwards the render step to the current scene. No-op when no scene
// is active.
func (c *Controller) Render(frame draw.Image) {
	if c.current != nil {
		c.current.Render(frame)
	}
}

// OnShutDown notifies the current scene that the game is ending. No-op when
// no scene is active.
func (c *Controller) OnShutDown() {
	if c.current != nil {
		c.current.OnShutDown()
	}
}

// SetCurrentScene exits the current scene, if any, then makes the first
// scene with the given name current and enters it, loading it first if this
// is its first activation. The old scene is always exited before the new
// name is resolved: asking for an unknown or empty name leaves the
// controller with no active scene.
func (c *Controller) SetCurrentScene(name string) {
	if c.current != nil {
		c.current.Exit()
	}

	c.current = c.SceneByName(name)
	if c.current != nil {
		if b := c.current.base(); !b.loaded {
			c.current.Load()
			b.loaded = true
		}
		c.current.Enter()
	}
}

// CurrentScene returns the active scene, or nil when none is set.
func (c *Controller) CurrentScene() Scene {
	return c.current
}

// CurrentSceneName returns the name of the active scene, or "" when none is
// set.
func (c *Controller) CurrentSceneName() string {
	if c.current == nil {
		return ""
	}
	return c.current.Name()
}

// AddScene appends the scene to the controller and attaches the controller
// to it.
func (c *Controller) AddScene(s Scene) {
	c.scenes = append(c.scenes, s)
	s.base().attachController(c)
}

// RemoveScene removes the scene from the controller, unloading it if it
// had been loaded, and detaches it. Removal does not deactivate: if the
// removed scene is the current one the caller is expected to have exited
// it first.
func (c *Controller) RemoveScene(s Scene) {
	for i, existing := range c.scenes {
		if existing == s {
			c.scenes = append(c.scenes[:i], c.scenes[i+1:]...)
			break
		}
	}
	if b := s.base(); b.loaded {
		s.Unload()
		b.loaded = false
	}
	s.base().detachController(c)
}

// RemoveAllScenes removes and returns every scene from the controller,
// unloading and detaching each one.
func (c *Controller) RemoveAllScenes() []Scene {
	removed := make([]Scene, len(c.scenes))
	copy(removed, c.scenes)
	for _, s := range removed {
		c.RemoveScene(s)
	}
	return removed
}

// removeByBase removes the scene whose embedded BaseScene is the given one.
// Used when a scene migrates to another controller.
func (c *Controller) removeByBase(b *BaseScene) {
	for _, s := range c.scenes {
		if s.base() == b {
			c.RemoveScene(s)
			return
		}
	}
}

// SceneByName returns the first scene with the given name, or nil.
func (c *Controller) SceneByName(name string) Scene {
	for _, s := range c.scenes {
		if s.IsNamed(name) {
			return s
		}
	}
	return nil
}

// Scenes returns a copy of the scene collection in insertion order.
func (c *Controller) Scenes() []Scene {
	out := make([]Scene, len(c.scenes))
	copy(out, c.scenes)
	return out
}

// Len returns the number of scenes in the controller.
func (c *Controller) Len() int {
	return len(c.scenes)
}

// Keyboard returns the keyboard device shared with every scene.
func (c *Controller) Keyboard() *input.Keyboard {
	return c.keyboard
}

// SetKeyboard wires the keyboard device that scenes receive during the
// input step.
func (c *Controller) SetKeyboard(keys *input.Keyboard) {
	c.keyboard = keys
}

// Screen returns the screen shared with every scene.
func (c *Controller) Screen() *core.Screen {
	return c.screen
}

// SetScreen wires the screen that scenes use for on/off-screen checks.
func (c *Controller) SetScreen(screen *core.Screen) {
	c.screen = screen
}
