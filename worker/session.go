// Package worker hosts an engine: it restarts rounds after game over and paces
// ticks in a loop that never blocks on the restart delay.
package worker

import (
	"time"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/engine"
	"github.com/battlesnakeio/arcade/rules"
	log "github.com/sirupsen/logrus"
)

// Session wraps an engine with the restart cycle
// running -> game-over -> awaiting-restart -> running.
// The restart delay is a deadline checked on every Advance.
type Session struct {
	Engine       *engine.Engine
	RestartDelay time.Duration

	status    rules.GameStatus
	endedAt   time.Time
	restartAt time.Time
	rounds    int
}

// NewSession starts a session on an engine that is already running a round.
func NewSession(e *engine.Engine, restartDelay time.Duration) *Session {
	return &Session{
		Engine:       e,
		RestartDelay: restartDelay,
		status:       e.Status(),
	}
}

// Status is the session status, which adds awaiting-restart to the engine
// statuses.
func (s *Session) Status() rules.GameStatus { return s.status }

// Rounds is the number of rounds that have ended.
func (s *Session) Rounds() int { return s.rounds }

// RestartAt is when the next round starts. It is only meaningful while
// awaiting a restart.
func (s *Session) RestartAt() time.Time { return s.restartAt }

// RequestDirection forwards an input to the engine.
func (s *Session) RequestDirection(d board.Direction) bool {
	return s.Engine.RequestDirection(d)
}

// Advance performs one step of the session at time now. While running that is
// one engine tick.
func (s *Session) Advance(now time.Time) error {
	switch s.status {
	case rules.GameStatusRunning:
		err := s.Engine.Tick()
		if s.Engine.Status() == rules.GameStatusGameOver {
			s.status = rules.GameStatusGameOver
			s.endedAt = now
			s.rounds++
		}
		return err

	case rules.GameStatusGameOver:
		s.restartAt = s.endedAt.Add(s.RestartDelay)
		s.status = rules.GameStatusAwaitingRestart
		log.WithFields(log.Fields{
			"RoundID":   s.Engine.RoundID(),
			"RestartAt": s.restartAt,
		}).Info("awaiting restart")
		return nil

	case rules.GameStatusAwaitingRestart:
		if now.Before(s.restartAt) {
			return nil
		}
		s.status = rules.GameStatusRunning
		err := s.Engine.NewRound()
		if s.Engine.Status() == rules.GameStatusGameOver {
			s.status = rules.GameStatusGameOver
			s.endedAt = now
			s.rounds++
		}
		return err
	}
	return nil
}
