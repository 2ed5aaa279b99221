package math

// Bounds represents a 2D axis-aligned rectangular area in the game world.
// Objects use it to outline the space they occupy and to determine whether
// two objects overlap.
//
// Note the deliberate asymmetry between Intersects and ContainsPoint:
// bounds whose edges merely touch DO intersect, while a point exactly on an
// edge is NOT contained. Game logic may depend on either behavior.
type Bounds struct {
	TopLeft Vector
	Width   float64
	Height  float64
}

// NewBounds creates bounds with the given top-left position and size.
func NewBounds(x, y, width, height float64) Bounds {
	return Bounds{TopLeft: Vector{X: x, Y: y}, Width: width, Height: height}
}

// NewBoundsAt creates bounds of the given size placed at the given position.
func NewBoundsAt(pos Vector, width, height float64) Bounds {
	return Bounds{TopLeft: pos, Width: width, Height: height}
}

// Intersects reports whether these bounds and the given bounds overlap at
// all. Edge-touching bounds count as intersecting.
func (b Bounds) Intersects(o Bounds) bool {
	switch {
	case b.X()+b.Width < o.X(): // too far to the left
		return false
	case b.X() > o.X()+o.Width: // too far to the right
		return false
	case b.Y()+b.Height < o.Y(): // too far up
		return false
	case b.Y() > o.Y()+o.Height: // too far down
		return false
	}
	return true
}

// ContainsPoint reports whether the given position lies strictly inside
// these bounds. A point exactly on an edge is not contained.
func (b Bounds) ContainsPoint(p Vector) bool {
	return p.X > b.X() && p.X < b.X()+b.Width &&
		p.Y > b.Y() && p.Y < b.Y()+b.Height
}

// ContainsBounds reports whether the given bounds are completely contained
// within this one. All four corners must be strictly inside, so degenerate
// zero-area bounds are never contained.
func (b Bounds) ContainsBounds(o Bounds) bool {
	return b.ContainsPoint(o.TopLeft) &&
		b.ContainsPoint(o.BottomRight()) &&
		b.ContainsPoint(o.TopRight()) &&
		b.ContainsPoint(o.BottomLeft())
}

// X returns the x-component of the top-left corner.
func (b Bounds) X() float64 {
	return b.TopLeft.X
}

// Y returns the y-component of the top-left corner.
func (b Bounds) Y() float64 {
	return b.TopLeft.Y
}

// TopRight returns the top-right corner of the bounds.
func (b Bounds) TopRight() Vector {
	return Vector{X: b.TopLeft.X + b.Width, Y: b.TopLeft.Y}
}

// BottomLeft returns the bottom-left corner of the bounds.
func (b Bounds) BottomLeft() Vector {
	return Vector{X: b.TopLeft.X, Y: b.TopLeft.Y + b.Height}
}

// BottomRight returns the bottom-right corner of the bounds.
func (b Bounds) BottomRight() Vector {
	return Vector{X: b.TopLeft.X + b.Width, Y: b.TopLeft.Y + b.Height}
}

// Center returns the center position of the bounds.
func (b Bounds) Center() Vector {
	return Vector{X: b.TopLeft.X + b.Width/2, Y: b.TopLeft.Y + b.Height/2}
}

// CenterX returns the x-coordinate of the center position.
func (b Bounds) CenterX() float64 {
	return b.TopLeft.X + b.Width/2
}

// CenterY returns the y-coordinate of the center position.
func (b Bounds) CenterY() float64 {
	return b.TopLeft.Y + b.Height/2
}

// SetX sets the x-component of the top-left corner.
func (b *Bounds) SetX(x float64) {
	b.TopLeft.X = x
}

// SetY sets the y-component of the top-left corner.
func (b *Bounds) SetY(y float64) {
	b.TopLeft.Y = y
}

// SetTopLeft sets the top-left corner of the bounds.
func (b *Bounds) SetTopLeft(x, y float64) {
	b.TopLeft.X = x
	b.TopLeft.Y = y
}

// SetCenter moves the bounds so that its center lies at the given position.
func (b *Bounds) SetCenter(x, y float64) {
	b.SetTopLeft(x-b.Width/2, y-b.Height/2)
}

// SetSize sets the width and height of the bounds.
func (b *Bounds) SetSize(w, h float64) {
	b.Width = w
	b.Height = h
}
