package rules

const (
	// DeathCauseWallCollision is when the snake runs off the board
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSnakeSelfCollision is when the head runs into the snake's own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
	// DeathCauseBoardFull is when the snake fills every cell and no food can be
	// placed. It ends the round the same way a collision does but counts as a win.
	DeathCauseBoardFull = "board-full"
)
