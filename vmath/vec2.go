package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in arena units
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// AngleTo returns the heading in radians from a toward b
func AngleTo(a, b Vec2) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// FromAngle returns a vector of length mag along heading angle
// Unit length by construction of cos/sin, so mag is exact
func FromAngle(angle, mag float64) Vec2 {
	return Vec2{math.Cos(angle) * mag, math.Sin(angle) * mag}
}

// Rotate applies the 2D rotation matrix to v
func Rotate(v Vec2, angle float64) Vec2 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec2{
		X: cos*v.X - sin*v.Y,
		Y: sin*v.X + cos*v.Y,
	}
}

// Deg2Rad converts degrees to radians
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// ClampToRect keeps a circle of radius r inside [0,w]x[0,h]
func ClampToRect(p Vec2, r, w, h float64) Vec2 {
	return Vec2{
		X: Clamp(p.X, r, w-r),
		Y: Clamp(p.Y, r, h-r),
	}
}

// InRect reports whether p lies within [0,w]x[0,h], edges inclusive
func InRect(p Vec2, w, h float64) bool {
	return p.X >= 0 && p.X <= w && p.Y >= 0 && p.Y <= h
}
