package math

import (
	m "math"

	"golang.org/x/exp/rand"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * (m.Pi / 180.0)
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * (180.0 / m.Pi)
}

// RandRange returns a random integer in the range [min, max].
func RandRange(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return rand.Intn(max-min+1) + min
}

// RandFloatRange returns a random float64 in the range [min, max).
func RandFloatRange(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}
