// Package engine runs a single-player snake round. The engine owns all of the
// round state, advances it one cell per Tick and pushes a snapshot of the
// result to a Surface.
//
// An Engine is not safe for concurrent use. One goroutine should own it and
// serialise RequestDirection, Tick and NewRound.
package engine

import (
	"math/rand"
	"time"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithLogger sets the log entry the engine writes to.
func WithLogger(entry *log.Entry) Option {
	return func(e *Engine) { e.log = entry }
}

// Engine is the snake simulation for one board.
type Engine struct {
	width   int32
	height  int32
	surface Surface
	rng     *rand.Rand
	log     *log.Entry

	roundID   string
	turn      int64
	direction board.Direction
	pending   board.Direction
	snake     *board.Snake
	food      *board.Point
	score     int
	status    rules.GameStatus
	death     *board.Death
}

// New validates the configuration and starts the first round. The surface may
// be nil.
func New(cfg config.Config, surface Surface, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		width:   cfg.GridWidth,
		height:  cfg.GridHeight,
		surface: surface,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
	if e.log == nil {
		e.log = log.NewEntry(log.StandardLogger())
	}

	if err := e.NewRound(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewRound throws away the current round and starts a fresh one. The initial
// frame is pushed to the surface.
func (e *Engine) NewRound() error {
	e.roundID = uuid.NewV4().String()
	e.turn = 0
	e.direction = rules.StartDirection
	e.pending = ""
	e.snake = rules.StartingSnake(e.width, e.height)
	e.food = rules.PlaceFood(e.rng, e.width, e.height, e.snake)
	e.score = 0
	e.status = rules.GameStatusRunning
	e.death = nil

	roundsTotal.Inc()
	e.log.WithFields(log.Fields{
		"RoundID": e.roundID,
		"Width":   e.width,
		"Height":  e.height,
		"Food":    e.food,
	}).Info("new round")

	// The starting snake can cover the whole board, then there is nowhere
	// to put food and the round is over before the first tick.
	if e.food == nil {
		e.status = rules.GameStatusGameOver
		e.death = &board.Death{
			Turn:  e.turn,
			Cause: rules.DeathCauseBoardFull,
		}
		deathsTotal.WithLabelValues(rules.DeathCauseBoardFull).Inc()
		e.log.WithField("RoundID", e.roundID).
			WithField("Cause", rules.DeathCauseBoardFull).
			Info("game over")
	}

	return e.push()
}

// RequestDirection queues d for the next tick. Reversing onto the current
// heading is ignored, as are unknown directions. It reports whether the
// request was queued. A later request before the next tick replaces an
// earlier one.
func (e *Engine) RequestDirection(d board.Direction) bool {
	if !d.Valid() || d == e.direction.Reverse() {
		return false
	}
	e.pending = d
	return true
}

// Tick advances the round one cell. It does nothing once the round is over.
// The only error is a failure of the surface, by which point the round state
// has already been updated.
func (e *Engine) Tick() error {
	if e.status != rules.GameStatusRunning {
		return nil
	}

	if e.pending != "" {
		e.direction = e.pending
		e.pending = ""
	}
	e.turn++
	ticksTotal.Inc()

	step := rules.Advance(e.rng, e.width, e.height, e.snake, e.food, e.direction)
	e.food = step.Food

	fields := log.Fields{
		"RoundID": e.roundID,
		"Turn":    e.turn,
	}
	if step.Ate {
		e.score++
		foodEatenTotal.Inc()
		e.log.WithFields(fields).
			WithField("Score", e.score).
			Debug("snake ate")
	}

	if step.Cause != "" {
		e.status = rules.GameStatusGameOver
		e.death = &board.Death{
			Turn:  e.turn,
			Cause: step.Cause,
		}
		deathsTotal.WithLabelValues(step.Cause).Inc()
		e.log.WithFields(fields).
			WithField("Score", e.score).
			WithField("Cause", step.Cause).
			Info("game over")
	} else {
		e.log.WithFields(fields).
			WithField("Head", e.snake.Head()).
			Debug("tick")
	}

	return e.push()
}

func (e *Engine) push() error {
	if e.surface == nil {
		return nil
	}
	if err := e.surface.Render(e.Frame()); err != nil {
		return errors.Wrap(err, "engine: render frame")
	}
	return nil
}

// Frame returns a snapshot of the current round.
func (e *Engine) Frame() *board.Frame {
	return &board.Frame{
		RoundID:   e.roundID,
		Turn:      e.turn,
		Width:     e.width,
		Height:    e.height,
		Body:      e.Body(),
		Food:      e.Food(),
		Score:     e.score,
		Direction: e.direction,
		Status:    string(e.status),
		Death:     e.Death(),
	}
}

// Body returns a copy of the snake, head first.
func (e *Engine) Body() []*board.Point { return e.snake.Points() }

// Food returns a copy of the food cell.
func (e *Engine) Food() *board.Point {
	if e.food == nil {
		return nil
	}
	return e.food.Clone()
}

// Death returns why the round ended, nil while it is running.
func (e *Engine) Death() *board.Death {
	if e.death == nil {
		return nil
	}
	d := *e.death
	return &d
}

// Score is the food eaten this round.
func (e *Engine) Score() int { return e.score }

// Status is the round status.
func (e *Engine) Status() rules.GameStatus { return e.status }

// Direction is the committed heading.
func (e *Engine) Direction() board.Direction { return e.direction }

// Turn is the number of ticks applied this round.
func (e *Engine) Turn() int64 { return e.turn }

// RoundID identifies the current round.
func (e *Engine) RoundID() string { return e.roundID }
