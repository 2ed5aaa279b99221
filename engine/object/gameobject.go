// Package object provides the base building blocks for things that live in
// the game world: the GameObject capability set with its positioned Bounds,
// and frame-stepped sprite Animations.
package object

import (
	"image/draw"

	"github.com/google/uuid"
	"github.com/spaghettifunk/nova/engine/math"
)

// GameObject is anything that follows the update/render pattern of the game
// loop. Concrete objects embed Base for identity, naming and bounds.
type GameObject interface {
	// Update advances the object by delta seconds.
	Update(delta float64)
	// Render draws the object onto the current frame.
	Render(frame draw.Image)
}

// Base carries the identity, name and world-space bounds of a game object.
// The bounds outline the area the object occupies and drive the
// intersection and containment tests.
type Base struct {
	id     uuid.UUID
	name   string
	bounds math.Bounds
}

func NewBase(name string) Base {
	return Base{
		id:   uuid.New(),
		name: name,
	}
}

// ID returns the unique instance identifier assigned at construction.
func (b *Base) ID() uuid.UUID {
	return b.id
}

func (b *Base) Name() string {
	return b.name
}

func (b *Base) SetName(name string) {
	b.name = name
}

// Intersects reports whether this object and the given object overlap at
// all in the game world.
func (b *Base) Intersects(other *Base) bool {
	return b.bounds.Intersects(other.bounds)
}

// IntersectsBounds reports whether this object's bounds overlap the given
// bounds at all.
func (b *Base) IntersectsBounds(bounds math.Bounds) bool {
	return b.bounds.Intersects(bounds)
}

// ContainsPoint reports whether the given position lies inside this
// object's bounds.
func (b *Base) ContainsPoint(p math.Vector) bool {
	return b.bounds.ContainsPoint(p)
}

// Contains reports whether the given object is fully contained within this
// one.
func (b *Base) Contains(other *Base) bool {
	return b.bounds.ContainsBounds(other.bounds)
}

// Bounds returns the object's bounds.
func (b *Base) Bounds() math.Bounds {
	return b.bounds
}

// SetBounds updates the object's top-left position and size at once.
func (b *Base) SetBounds(x, y, w, h float64) {
	b.bounds.SetTopLeft(x, y)
	b.bounds.SetSize(w, h)
}

// Position returns the top-left corner of the object's bounds.
func (b *Base) Position() math.Vector {
	return b.bounds.TopLeft
}

// SetPosition moves the top-left corner of the object's bounds.
func (b *Base) SetPosition(x, y float64) {
	b.bounds.SetTopLeft(x, y)
}

func (b *Base) X() float64 {
	return b.bounds.X()
}

func (b *Base) Y() float64 {
	return b.bounds.Y()
}

func (b *Base) SetX(x float64) {
	b.bounds.SetX(x)
}

func (b *Base) SetY(y float64) {
	b.bounds.SetY(y)
}

// Center returns the center of the object's bounds.
func (b *Base) Center() math.Vector {
	return b.bounds.Center()
}

// SetCenter moves the object so that the center of its bounds lies at the
// given position.
func (b *Base) SetCenter(x, y float64) {
	b.bounds.SetCenter(x, y)
}

func (b *Base) Width() float64 {
	return b.bounds.Width
}

func (b *Base) Height() float64 {
	return b.bounds.Height
}

// SetSize updates the width and height of the object's bounds.
func (b *Base) SetSize(w, h float64) {
	b.bounds.SetSize(w, h)
}
