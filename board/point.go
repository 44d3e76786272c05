// Package board holds the value types shared by the rules, the engine and the
// surfaces that draw it.
package board

import "fmt"

// Point is a cell on the grid. X grows to the right and Y grows downwards.
type Point struct {
	X int32
	Y int32
}

// Equal checks if 2 points are the same x,y coordinate
func (p *Point) Equal(other *Point) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.X == other.X && p.Y == other.Y
}

// Clone returns a copy of the point.
func (p *Point) Clone() *Point {
	return &Point{X: p.X, Y: p.Y}
}

// Add returns the point one step away in direction d.
func (p *Point) Add(d Direction) *Point {
	dx, dy := d.Vector()
	return &Point{X: p.X + dx, Y: p.Y + dy}
}

// Inside reports whether p lies within [0,width) x [0,height).
func (p *Point) Inside(width, height int32) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Adjacent reports whether the points are exactly one grid step apart.
func (p *Point) Adjacent(other *Point) bool {
	dx, dy := p.X-other.X, p.Y-other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

func (p *Point) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
