// Package geom provides the 2D vector type shared by the growth engine and its
// collaborators.
package geom

import "math"

// Vec is a 2D floating-point position or direction.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec { return Vec{X: x, Y: y} }

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale multiplies both components by s.
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// Mul scales each axis independently.
func (v Vec) Mul(sx, sy float64) Vec { return Vec{v.X * sx, v.Y * sy} }

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the Euclidean distance between v and o.
func (v Vec) Dist(o Vec) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec{v.X / l, v.Y / l}
}

// Lerp returns the point at fraction t along the segment from v to o.
func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Floor returns the integer cell containing v.
func (v Vec) Floor() (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}
