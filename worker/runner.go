package worker

import (
	"context"
	"time"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Runner owns a session and drives it at a fixed rate. Directions arriving on
// Input between two steps are applied in order before the next step, so at
// most one change of heading lands per tick.
type Runner struct {
	Session *Session
	Input   <-chan board.Direction
	Limiter *rate.Limiter
	// MaxRounds stops the runner once that many rounds have ended, 0 runs
	// until the context is done.
	MaxRounds int
	// StopOnError makes Run return the first advance error instead of logging
	// it and carrying on.
	StopOnError bool
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewRunner paces the session at cfg.TicksPerSecond.
func NewRunner(cfg config.Config, session *Session, input <-chan board.Direction) *Runner {
	return &Runner{
		Session: session,
		Input:   input,
		Limiter: rate.NewLimiter(cfg.TickLimit(), 1),
	}
}

// Run will run the session in a loop until the context is done or MaxRounds
// rounds have ended.
func (r *Runner) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := r.Limiter.Wait(ctx); err != nil {
			// The limiter refuses waits that would run past the deadline,
			// there is nothing left to do but let the context expire.
			if _, ok := ctx.Deadline(); ok || ctx.Err() != nil {
				<-ctx.Done()
				return ctx.Err()
			}
			return errors.Wrap(err, "runner: wait for tick")
		}

		if err := r.step(); err != nil {
			return err
		}

		if r.MaxRounds > 0 && r.Session.Rounds() >= r.MaxRounds {
			log.WithField("Rounds", r.Session.Rounds()).Info("runner finished")
			return nil
		}
	}
}

func (r *Runner) step() error {
	r.drainInput()

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	if err := r.Session.Advance(now()); err != nil {
		log.WithError(err).
			WithField("RoundID", r.Session.Engine.RoundID()).
			Error("advance failed")
		if r.StopOnError {
			return err
		}
	}
	return nil
}

func (r *Runner) drainInput() {
	for {
		select {
		case d, ok := <-r.Input:
			if !ok {
				r.Input = nil
				return
			}
			r.Session.RequestDirection(d)
		default:
			return
		}
	}
}
