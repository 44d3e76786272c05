package rules

import "github.com/battlesnakeio/arcade/board"

const (
	// StartDirection is the heading of every new snake.
	StartDirection = board.DirectionRight
	// StartLength is the body length of every new snake.
	StartLength = 3

	startX = 5
	startY = 2
)

// StartingSnake returns the snake every round begins with: head at (5, 2) with
// the body trailing to the left. Smaller grids clamp the head so the whole body
// stays on the board, which needs a width of at least StartLength.
func StartingSnake(width, height int32) *board.Snake {
	x, y := int32(startX), int32(startY)
	if x > width-1 {
		x = width - 1
	}
	if x < StartLength-1 {
		x = StartLength - 1
	}
	if y > height-1 {
		y = height - 1
	}
	if y < 0 {
		y = 0
	}

	snake := &board.Snake{}
	for i := int32(0); i < StartLength; i++ {
		snake.Body = append(snake.Body, &board.Point{X: x - i, Y: y})
	}
	return snake
}
