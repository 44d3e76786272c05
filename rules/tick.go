package rules

import (
	"math/rand"

	"github.com/battlesnakeio/arcade/board"
)

// Step is the outcome of moving the snake one cell.
type Step struct {
	// Ate is set when the head landed on the food.
	Ate bool
	// Food is where the food sits after the step.
	Food *board.Point
	// Cause is the death cause, empty while the snake is alive.
	Cause string
}

// Advance moves the snake one cell in direction and applies the round rules in
// order:
//  1. insert the new head
//  2. grow if the head is on the food and place new food, otherwise drop the tail
//  3. check for wall collision
//  4. check for self collision against the body as it is after step 2
//
// The snake is modified in place.
func Advance(rng *rand.Rand, width, height int32, snake *board.Snake, food *board.Point, direction board.Direction) Step {
	step := Step{Food: food}

	snake.Move(direction)

	boardFull := false
	if snake.Head().Equal(food) {
		step.Ate = true
		next := PlaceFood(rng, width, height, snake)
		if next == nil {
			boardFull = true
		} else {
			step.Food = next
		}
	} else {
		snake.Shrink()
	}

	step.Cause = checkForDeath(width, height, snake)
	if step.Cause == "" && boardFull {
		step.Cause = DeathCauseBoardFull
	}
	return step
}
