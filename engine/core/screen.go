package core

import (
	"sync"

	"github.com/spaghettifunk/nova/engine/math"
)

const (
	// Default width of the game window.
	DefaultWindowWidth = 1300
	// Default height of the game window.
	DefaultWindowHeight = 700
)

// Screen stores the current size of the drawable surface the game is
// rendered on, plus the size of the window that hosts it. The engine owns a
// single instance and passes it to the scene layer so that game objects can
// determine whether they are on screen. The platform layer updates it on
// every resize notification; those arrive on the event-source goroutine, so
// access is serialized.
type Screen struct {
	mu sync.RWMutex

	windowWidth  int
	windowHeight int

	screenWidth  int
	screenHeight int
	bounds       math.Bounds
}

func NewScreen() *Screen {
	return &Screen{
		windowWidth:  DefaultWindowWidth,
		windowHeight: DefaultWindowHeight,
		bounds:       math.NewBounds(0, 0, DefaultWindowWidth, DefaultWindowHeight),
	}
}

// SetSize updates the drawable surface size. The platform layer calls this
// whenever the window is resized.
func (s *Screen) SetSize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screenWidth = w
	s.screenHeight = h
	s.bounds = math.NewBounds(0, 0, float64(w), float64(h))
}

// SetWindowSize updates the size of the hosting window itself.
func (s *Screen) SetWindowSize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windowWidth = w
	s.windowHeight = h
}

// Size returns the current width and height of the drawable surface.
func (s *Screen) Size() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.screenWidth, s.screenHeight
}

// WindowSize returns the current width and height of the hosting window.
func (s *Screen) WindowSize() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.windowWidth, s.windowHeight
}

// Bounds returns the screen rectangle anchored at the origin.
func (s *Screen) Bounds() math.Bounds {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bounds
}

// IsOnScreen reports whether the given bounds intersect the screen at all.
func (s *Screen) IsOnScreen(b math.Bounds) bool {
	return s.Bounds().Intersects(b)
}

// IsOffScreen reports whether the given bounds are not fully contained by
// the screen. Note that this is stricter than !IsOnScreen: bounds straddling
// an edge are both on screen and off screen.
func (s *Screen) IsOffScreen(b math.Bounds) bool {
	return !s.Bounds().ContainsBounds(b)
}

// ContainsPoint reports whether the given point is visible on the screen.
func (s *Screen) ContainsPoint(p math.Vector) bool {
	return s.Bounds().ContainsPoint(p)
}
