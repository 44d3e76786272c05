package board

// Direction is one of the four grid headings.
type Direction string

const (
	// DirectionUp moves towards y = 0.
	DirectionUp Direction = "up"
	// DirectionDown moves away from y = 0.
	DirectionDown Direction = "down"
	// DirectionLeft moves towards x = 0.
	DirectionLeft Direction = "left"
	// DirectionRight moves away from x = 0.
	DirectionRight Direction = "right"
)

// Directions lists every valid heading in a stable order.
var Directions = []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return true
	}
	return false
}

// Reverse returns the opposite heading. The zero value reverses to itself.
func (d Direction) Reverse() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return d
}

// Vector is the unit step for the heading.
func (d Direction) Vector() (dx, dy int32) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	}
	return 0, 0
}
