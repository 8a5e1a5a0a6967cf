package vmath

// CirclesOverlap reports strict overlap: center distance below the sum of radii
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	return a.Distance(b) < ra+rb
}

// Bounds is an axis-aligned rectangle
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Rect returns bounds from origin with the given size
func Rect(width, height float64) Bounds {
	return Bounds{MaxX: width, MaxY: height}
}

// Inset shrinks bounds by m on every side, negative m grows them
func (b Bounds) Inset(m float64) Bounds {
	return Bounds{b.MinX + m, b.MinY + m, b.MaxX - m, b.MaxY - m}
}

// Contains reports whether p lies inside or on the edge of b
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Reflect flips velocity components whose axis has crossed b strictly
// Returns the number of axes flipped
func Reflect(p Vec2, vel *Vec2, b Bounds) int {
	flips := 0
	if p.X < b.MinX || p.X > b.MaxX {
		vel.X = -vel.X
		flips++
	}
	if p.Y < b.MinY || p.Y > b.MaxY {
		vel.Y = -vel.Y
		flips++
	}
	return flips
}

// ReflectInclusive is Reflect that also flips on contact with the edge
func ReflectInclusive(p Vec2, vel *Vec2, b Bounds) int {
	flips := 0
	if p.X <= b.MinX || p.X >= b.MaxX {
		vel.X = -vel.X
		flips++
	}
	if p.Y <= b.MinY || p.Y >= b.MaxY {
		vel.Y = -vel.Y
		flips++
	}
	return flips
}
