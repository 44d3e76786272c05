package rules

// GameStatus is the lifecycle state of a round.
type GameStatus string

const (
	// GameStatusRunning represents a round that still accepts ticks
	GameStatusRunning GameStatus = "running"
	// GameStatusGameOver represents a round that has ended, further ticks are ignored
	GameStatusGameOver GameStatus = "game-over"
	// GameStatusAwaitingRestart represents the pause between a game over and the next round
	GameStatusAwaitingRestart GameStatus = "awaiting-restart"
)
