package vmath

// Circle is a collision body
type Circle struct {
	Center Vec2
	Radius float64
}

// Overlaps reports whether two circles intersect
// Strict: circles whose centers are exactly r1+r2 apart are touching, not colliding
func Overlaps(a, b Circle) bool {
	return Distance(a.Center, b.Center) < a.Radius+b.Radius
}
