package math

import (
	"fmt"
	m "math"
)

// Epsilon is the default tolerance used when comparing vectors for equality.
const Epsilon float64 = 0.0001

// Vector represents a location in 2D space used for positions, velocities or
// anything else with a directional x/y component. Arithmetic methods return
// new values; transform methods (Translate, Scale, Rotate) mutate in place.
type Vector struct {
	X float64
	Y float64
}

// NewVector creates a new vector with the given xy-components.
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Polar creates a new vector of the given length pointing in the given
// direction, in degrees.
func Polar(degrees, length float64) Vector {
	rads := DegToRad(degrees)
	return Vector{
		X: length * m.Cos(rads),
		Y: length * m.Sin(rads),
	}
}

// Translate shifts the vector by the given xy-distances.
func (v *Vector) Translate(tx, ty float64) {
	v.X += tx
	v.Y += ty
}

// TranslateBy shifts the vector by the given vector amount.
func (v *Vector) TranslateBy(t Vector) {
	v.X += t.X
	v.Y += t.Y
}

// Scale stretches or shrinks the vector by the given xy-scales.
func (v *Vector) Scale(sx, sy float64) {
	v.X *= sx
	v.Y *= sy
}

// Rotate rotates the vector about the origin by the given number of degrees.
func (v *Vector) Rotate(degrees float64) {
	rad := DegToRad(degrees)
	sin, cos := m.Sincos(rad)
	x := v.X*cos - v.Y*sin
	v.Y = v.X*sin + v.Y*cos
	v.X = x
}

// RotateAround rotates the vector by the given number of degrees using the
// given second vector as the origin of the rotation.
func (v *Vector) RotateAround(degrees float64, origin Vector) {
	rad := DegToRad(degrees)
	sin, cos := m.Sincos(rad)
	x := origin.X + ((v.X-origin.X)*cos - (v.Y-origin.Y)*sin)
	v.Y = origin.Y + ((v.X-origin.X)*sin + (v.Y-origin.Y)*cos)
	v.X = x
}

// Add returns the sum of this vector and the given one.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the given vector subtracted from this one.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns this vector multiplied by the given scalar.
func (v Vector) Mul(scalar float64) Vector {
	return Vector{X: v.X * scalar, Y: v.Y * scalar}
}

// Div returns this vector divided by the given scalar.
func (v Vector) Div(scalar float64) Vector {
	return Vector{X: v.X / scalar, Y: v.Y / scalar}
}

// DistanceTo returns the distance between this vector and the given one.
func (v Vector) DistanceTo(o Vector) float64 {
	return m.Hypot(v.X-o.X, v.Y-o.Y)
}

// DirectionTo returns the angle from this vector to the given one, in degrees.
func (v Vector) DirectionTo(o Vector) float64 {
	return RadToDeg(m.Atan2(o.Y-v.Y, o.X-v.X))
}

// Midpoint returns the point halfway between this vector and the given one.
func (v Vector) Midpoint(o Vector) Vector {
	return Vector{X: (v.X + o.X) / 2.0, Y: (v.Y + o.Y) / 2.0}
}

// Length returns the length of the vector.
func (v Vector) Length() float64 {
	return m.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSqr returns the squared length of the vector.
func (v Vector) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// IsZero reports whether both components are zero within Epsilon.
func (v Vector) IsZero() bool {
	return v.Equals(Vector{})
}

// Equals reports whether the two vectors are equal within Epsilon.
func (v Vector) Equals(o Vector) bool {
	return v.EqualsEpsilon(o, Epsilon)
}

// EqualsEpsilon reports whether the two vectors are equal within the given
// tolerance.
func (v Vector) EqualsEpsilon(o Vector, epsilon float64) bool {
	return m.Abs(v.X-o.X) <= epsilon && m.Abs(v.Y-o.Y) <= epsilon
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g,%g)", v.X, v.Y)
}
