package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// Configuration variables. These are read once from the environment and act as
// the defaults for every flag exposed by the snake command.
var (
	ScreenWidth  = getEnvInt("SNAKE_SCREEN_WIDTH", 600)
	ScreenHeight = getEnvInt("SNAKE_SCREEN_HEIGHT", 400)
	BlockSize    = getEnvInt("SNAKE_BLOCK_SIZE", 20)
	TickRate     = getEnvInt("SNAKE_TICK_RATE", 10)
	RestartDelay = getEnvInt("SNAKE_RESTART_DELAY", 5)
)

// MinGridWidth is the narrowest grid that still fits the starting snake.
const MinGridWidth = 3

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is fixed when an engine is constructed.
type Config struct {
	GridWidth           int32
	GridHeight          int32
	TicksPerSecond      int
	RestartDelaySeconds int
	// Seed for food placement, 0 picks a time based seed.
	Seed int64
}

// Default returns the configuration derived from the environment defaults.
func Default() Config {
	return FromScreen(ScreenWidth, ScreenHeight, BlockSize, TickRate, RestartDelay)
}

// FromScreen converts pixel dimensions to grid dimensions. Partial cells are
// dropped, so a 610px wide screen with 20px blocks is still 30 cells wide. A
// block size below 1 yields an empty grid, which Validate rejects.
func FromScreen(screenWidth, screenHeight, blockSize, ticksPerSecond, restartDelay int) Config {
	c := Config{
		TicksPerSecond:      ticksPerSecond,
		RestartDelaySeconds: restartDelay,
	}
	if blockSize <= 0 {
		return c
	}
	c.GridWidth = int32(screenWidth / blockSize)
	c.GridHeight = int32(screenHeight / blockSize)
	return c
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.GridWidth < MinGridWidth {
		return errors.Wrapf(ErrInvalidConfig, "grid width %d is below %d", c.GridWidth, MinGridWidth)
	}
	if c.GridHeight < 1 {
		return errors.Wrapf(ErrInvalidConfig, "grid height %d is below 1", c.GridHeight)
	}
	if c.TicksPerSecond <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "tick rate %d must be positive", c.TicksPerSecond)
	}
	if c.RestartDelaySeconds < 0 {
		return errors.Wrapf(ErrInvalidConfig, "restart delay %d must not be negative", c.RestartDelaySeconds)
	}
	return nil
}

// TickLimit is the pacing limit for the host loop.
func (c Config) TickLimit() rate.Limit {
	return rate.Limit(c.TicksPerSecond)
}

// TickInterval is the time between two ticks.
func (c Config) TickInterval() time.Duration {
	if c.TicksPerSecond <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TicksPerSecond)
}

// RestartDelay is the pause between a game over and the next round.
func (c Config) RestartDelay() time.Duration {
	return time.Duration(c.RestartDelaySeconds) * time.Second
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
