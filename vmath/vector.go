// Package vmath provides 2D float64 vector math for the simulation.
package vmath

import "math"

// Vec2 is a 2D vector in pixel space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by scalar s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the Euclidean magnitude of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared magnitude without a sqrt.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector of v, zero-safe.
func (v Vec2) Normalize() Vec2 {
	mag := v.Length()
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{v.X / mag, v.Y / mag}
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// IsZero reports whether v has no magnitude.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Clamp limits both components to the given inclusive ranges.
func (v Vec2) Clamp(minX, maxX, minY, maxY float64) Vec2 {
	return Vec2{
		X: ClampFloat(v.X, minX, maxX),
		Y: ClampFloat(v.Y, minY, maxY),
	}
}

// ReflectAxisX returns v reflected off a vertical wall (X axis boundary).
// Use for left/right playfield edge collision.
func (v Vec2) ReflectAxisX() Vec2 {
	return Vec2{-v.X, v.Y}
}

// ReflectAxisY returns v reflected off a horizontal wall (Y axis boundary).
// Use for top/bottom playfield edge collision.
func (v Vec2) ReflectAxisY() Vec2 {
	return Vec2{v.X, -v.Y}
}

// ClampFloat limits x to [min, max].
func ClampFloat(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}
