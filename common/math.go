package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Vec is a 2D point or direction in screen space (y grows downward).
type Vec struct {
	X float64
	Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec) Scale(s float64) Vec { return Vec{X: v.X * s, Y: v.Y * s} }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector of v, or the zero vector when v is
// too short to have a direction.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l < 1e-9 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Toward returns a velocity of the given speed pointing from `from` to `to`.
func Toward(from, to Vec, speed float64) Vec {
	return to.Sub(from).Normalize().Scale(speed)
}

func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
