package world

import (
	"fmt"
	"math"
)

// Point is a 2D position or vector. Used for both map space and screen space.
// All methods return new values.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale multiplies both components by m.
func (p Point) Scale(m float64) Point { return Point{p.X * m, p.Y * m} }

// Magnitude returns the vector length.
func (p Point) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Normal returns the unit vector in p's direction. The zero vector stays zero.
func (p Point) Normal() Point {
	mag := p.Magnitude()
	if mag == 0 {
		return Point{}
	}
	return Point{p.X / mag, p.Y / mag}
}

// SquareDist returns the squared Euclidean distance between p and q.
func (p Point) SquareDist(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Sqrt(p.SquareDist(q))
}

// Collides reports whether q lies within minDist of p (inclusive).
func (p Point) Collides(q Point, minDist float64) bool {
	return p.SquareDist(q) <= minDist*minDist
}

func (p Point) Floor() Point { return Point{math.Floor(p.X), math.Floor(p.Y)} }

// Round rounds both components to the given number of decimal digits.
func (p Point) Round(digits int) Point {
	pow := math.Pow(10, float64(digits))
	return Point{math.Round(p.X*pow) / pow, math.Round(p.Y*pow) / pow}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle. Min is inclusive, Max is exclusive.
type Rect struct {
	Min, Max Point
}

// RectXYWH builds a rectangle from its top-left corner and size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Min: Point{x, y}, Max: Point{x + w, y + h}}
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X &&
		p.Y >= r.Min.Y && p.Y < r.Max.Y
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}
