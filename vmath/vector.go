package vmath

import "math"

// Vec2 is a point or direction in play-area pixel space
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2         { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2         { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2    { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Len() float64            { return math.Hypot(v.X, v.Y) }
func (v Vec2) Distance(o Vec2) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }

// IsFinite reports whether neither component is NaN or infinite
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Normalize returns the unit vector of v
// A zero vector is divided by 1 and stays zero
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		l = 1
	}
	return Vec2{v.X / l, v.Y / l}
}

// FromAngle returns a vector of magnitude mag pointing at angle radians
func FromAngle(angle, mag float64) Vec2 {
	return Vec2{math.Cos(angle) * mag, math.Sin(angle) * mag}
}
