package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/nova/engine/math"
)

func TestScreenDefaults(t *testing.T) {
	s := NewScreen()

	w, h := s.WindowSize()
	assert.Equal(t, DefaultWindowWidth, w)
	assert.Equal(t, DefaultWindowHeight, h)

	b := s.Bounds()
	assert.Equal(t, math.NewBounds(0, 0, DefaultWindowWidth, DefaultWindowHeight), b)
}

func TestSetSizeUpdatesBounds(t *testing.T) {
	s := NewScreen()
	s.SetSize(800, 600)

	w, h := s.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, math.NewBounds(0, 0, 800, 600), s.Bounds())

	// The window size is tracked separately.
	s.SetWindowSize(1024, 768)
	ww, wh := s.WindowSize()
	assert.Equal(t, 1024, ww)
	assert.Equal(t, 768, wh)
	w, h = s.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestIsOnScreen(t *testing.T) {
	s := NewScreen()
	s.SetSize(100, 100)

	assert.True(t, s.IsOnScreen(math.NewBounds(10, 10, 20, 20)))
	// Straddling an edge still counts as on screen.
	assert.True(t, s.IsOnScreen(math.NewBounds(90, 10, 20, 20)))
	// Touching the edge from outside counts as on screen too.
	assert.True(t, s.IsOnScreen(math.NewBounds(100, 0, 20, 20)))
	assert.False(t, s.IsOnScreen(math.NewBounds(200, 200, 20, 20)))
}

func TestIsOffScreen(t *testing.T) {
	s := NewScreen()
	s.SetSize(100, 100)

	assert.False(t, s.IsOffScreen(math.NewBounds(10, 10, 20, 20)))

	// A straddling object is on screen and off screen at once.
	straddling := math.NewBounds(90, 10, 20, 20)
	assert.True(t, s.IsOnScreen(straddling))
	assert.True(t, s.IsOffScreen(straddling))

	assert.True(t, s.IsOffScreen(math.NewBounds(200, 200, 20, 20)))
}

func TestScreenContainsPoint(t *testing.T) {
	s := NewScreen()
	s.SetSize(100, 100)

	assert.True(t, s.ContainsPoint(math.NewVector(50, 50)))
	// Edge points are not contained.
	assert.False(t, s.ContainsPoint(math.NewVector(0, 50)))
	assert.False(t, s.ContainsPoint(math.NewVector(100, 100)))
}
