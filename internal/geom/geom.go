// Package geom holds the small amount of 2D math the simulation needs:
// points, axis-aligned rectangles and circles in table coordinates.
package geom

import "math"

// Vec is a point or a displacement on the table
type Vec struct {
	X, Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by k
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the length of v
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r (edges included)
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Intersects reports whether r and o overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.Right() > o.X && r.X < o.Right() && r.Bottom() > o.Y && r.Y < o.Bottom()
}

// Circle is a disc given by its center and radius
type Circle struct {
	Center Vec
	R      float64
}

// Bounds returns the circle's bounding box
func (c Circle) Bounds() Rect {
	return Rect{X: c.Center.X - c.R, Y: c.Center.Y - c.R, W: 2 * c.R, H: 2 * c.R}
}

// OverlapsRect is the collision test used for the ball: the circle's
// bounding box against the rectangle.
func (c Circle) OverlapsRect(r Rect) bool {
	return c.Bounds().Intersects(r)
}

// separationSlack keeps a separated circle strictly clear of the rectangle
// despite float rounding.
const separationSlack = 1e-6

// Separate returns the smallest translation that moves c so its bounding
// box no longer overlaps r. When the circle sits exactly on the rectangle
// center, dir breaks the tie. A zero vector means there is no overlap.
func Separate(c Circle, r Rect, dir Vec) Vec {
	if !c.OverlapsRect(r) {
		return Vec{}
	}

	b := c.Bounds()
	left := b.Right() - r.X  // distance to clear by moving left
	right := r.Right() - b.X // by moving right
	up := b.Bottom() - r.Y
	down := r.Bottom() - b.Y

	pushX := -(left + separationSlack)
	if right < left || (right == left && dir.X > 0) {
		pushX = right + separationSlack
	}
	pushY := -(up + separationSlack)
	if down < up || (down == up && dir.Y > 0) {
		pushY = down + separationSlack
	}

	if math.Abs(pushX) <= math.Abs(pushY) {
		return Vec{X: pushX}
	}
	return Vec{Y: pushY}
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or 1
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
