package model

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec is a point or a direction on the map plane.
// Value type, passed by value.
type Vec = mgl64.Vec2

// epsilon below which a vector is treated as zero length.
const epsilon = 1e-9

// V creates a Vec from its coordinates.
func V(x, y float64) Vec {
	return Vec{x, y}
}

// Direction returns v scaled to unit length.
// Returns false for a zero vector, which has no direction.
func Direction(v Vec) (Vec, bool) {
	l := v.Len()
	if l < epsilon {
		return Vec{}, false
	}
	return v.Mul(1 / l), true
}

// Heading returns the angle of v in radians (0 points along +X).
func Heading(v Vec) float64 {
	return math.Atan2(v.Y(), v.X())
}

// IsZero reports whether v has no length.
func IsZero(v Vec) bool {
	return v.Len() < epsilon
}

// Rect is an axis-aligned rectangle on the map plane.
type Rect struct {
	Min Vec
	Max Vec
}

// RectAround returns a rectangle of the given size centred on c.
func RectAround(c Vec, width, height float64) Rect {
	half := V(width/2, height/2)
	return Rect{Min: c.Sub(half), Max: c.Add(half)}
}

// Contains reports whether p lies inside r (edges included).
func (r Rect) Contains(p Vec) bool {
	return p.X() >= r.Min.X() && p.X() <= r.Max.X() &&
		p.Y() >= r.Min.Y() && p.Y() <= r.Max.Y()
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X() < other.Max.X() && other.Min.X() < r.Max.X() &&
		r.Min.Y() < other.Max.Y() && other.Min.Y() < r.Max.Y()
}
