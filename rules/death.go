package rules

import "github.com/battlesnakeio/arcade/board"

// checkForDeath looks at the snake with the updated coords and returns the
// death cause, or an empty string while the snake is alive. The body must
// already have grown or shrunk for this turn.
func checkForDeath(width, height int32, snake *board.Snake) string {
	head := snake.Head()
	if head == nil {
		return ""
	}
	if deathByOutOfBounds(head, width, height) {
		return DeathCauseWallCollision
	}
	for i, b := range snake.Body {
		if i == 0 {
			continue
		}
		if deathByBodyCollision(head, b) {
			return DeathCauseSnakeSelfCollision
		}
	}
	return ""
}

func deathByBodyCollision(head, body *board.Point) bool {
	return head.Equal(body)
}

func deathByOutOfBounds(head *board.Point, width, height int32) bool {
	return (head.X < 0) || (head.X >= width) || (head.Y < 0) || (head.Y >= height)
}
