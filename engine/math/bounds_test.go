package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Bounds
		want bool
	}{
		{"overlapping", NewBounds(0, 0, 10, 10), NewBounds(5, 5, 10, 10), true},
		{"contained", NewBounds(0, 0, 10, 10), NewBounds(2, 2, 2, 2), true},
		{"identical", NewBounds(0, 0, 10, 10), NewBounds(0, 0, 10, 10), true},
		{"touching right edge", NewBounds(0, 0, 10, 10), NewBounds(10, 0, 10, 10), true},
		{"touching bottom edge", NewBounds(0, 0, 10, 10), NewBounds(0, 10, 10, 10), true},
		{"touching corner", NewBounds(0, 0, 10, 10), NewBounds(10, 10, 10, 10), true},
		{"disjoint horizontally", NewBounds(0, 0, 10, 10), NewBounds(10.5, 0, 10, 10), false},
		{"disjoint vertically", NewBounds(0, 0, 10, 10), NewBounds(0, 20, 10, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Intersects(tt.b))
			// Intersection is symmetric.
			assert.Equal(t, tt.want, tt.b.Intersects(tt.a))
		})
	}
}

func TestContainsPoint(t *testing.T) {
	b := NewBounds(0, 0, 10, 10)

	assert.True(t, b.ContainsPoint(NewVector(5, 5)))
	assert.True(t, b.ContainsPoint(NewVector(0.001, 9.999)))

	// Points exactly on an edge or corner are not contained.
	assert.False(t, b.ContainsPoint(NewVector(0, 5)))
	assert.False(t, b.ContainsPoint(NewVector(10, 5)))
	assert.False(t, b.ContainsPoint(NewVector(5, 0)))
	assert.False(t, b.ContainsPoint(NewVector(5, 10)))
	assert.False(t, b.ContainsPoint(NewVector(0, 0)))
	assert.False(t, b.ContainsPoint(NewVector(10, 10)))

	assert.False(t, b.ContainsPoint(NewVector(-1, 5)))
	assert.False(t, b.ContainsPoint(NewVector(5, 11)))
}

func TestContainsBounds(t *testing.T) {
	b := NewBounds(0, 0, 10, 10)

	assert.True(t, b.ContainsBounds(NewBounds(1, 1, 8, 8)))

	// Identical and edge-aligned bounds are not contained; corners must be
	// strictly inside.
	assert.False(t, b.ContainsBounds(NewBounds(0, 0, 10, 10)))
	assert.False(t, b.ContainsBounds(NewBounds(0, 1, 8, 8)))
	assert.False(t, b.ContainsBounds(NewBounds(1, 1, 9, 8)))

	// Bigger or disjoint bounds.
	assert.False(t, b.ContainsBounds(NewBounds(-1, -1, 12, 12)))
	assert.False(t, b.ContainsBounds(NewBounds(20, 20, 2, 2)))

	// Edge-touching bounds intersect but are not contained.
	touching := NewBounds(10, 0, 5, 5)
	assert.True(t, b.Intersects(touching))
	assert.False(t, b.ContainsBounds(touching))
}

func TestCorners(t *testing.T) {
	b := NewBounds(1, 2, 10, 20)

	assert.Equal(t, NewVector(1, 2), b.TopLeft)
	assert.Equal(t, NewVector(11, 2), b.TopRight())
	assert.Equal(t, NewVector(1, 22), b.BottomLeft())
	assert.Equal(t, NewVector(11, 22), b.BottomRight())
	assert.Equal(t, NewVector(6, 12), b.Center())
	assert.Equal(t, 6.0, b.CenterX())
	assert.Equal(t, 12.0, b.CenterY())
}

func TestSetters(t *testing.T) {
	b := NewBounds(0, 0, 10, 20)

	b.SetX(5)
	b.SetY(6)
	assert.Equal(t, 5.0, b.X())
	assert.Equal(t, 6.0, b.Y())

	b.SetTopLeft(1, 2)
	assert.Equal(t, NewVector(1, 2), b.TopLeft)

	b.SetCenter(10, 20)
	assert.Equal(t, NewVector(5, 10), b.TopLeft)

	b.SetSize(4, 6)
	assert.Equal(t, 4.0, b.Width)
	assert.Equal(t, 6.0, b.Height)
}

func TestNewBoundsAt(t *testing.T) {
	b := NewBoundsAt(NewVector(3, 4), 5, 6)
	assert.Equal(t, NewBounds(3, 4, 5, 6), b)
}
