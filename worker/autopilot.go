package worker

import (
	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/rules"
)

// Autopilot is an input source for unattended play. Render it as a surface and
// it answers every frame with a heading on Directions: the safe move that gets
// closest to the food.
type Autopilot struct {
	directions chan board.Direction
}

// NewAutopilot returns an autopilot with an empty direction queue.
func NewAutopilot() *Autopilot {
	return &Autopilot{directions: make(chan board.Direction, 1)}
}

// Directions is the stream of requested headings.
func (a *Autopilot) Directions() <-chan board.Direction { return a.directions }

// Render picks the next heading for the frame. A full queue drops the pick.
func (a *Autopilot) Render(frame *board.Frame) error {
	if frame.Status != string(rules.GameStatusRunning) {
		return nil
	}
	d, ok := choose(frame)
	if !ok {
		return nil
	}
	select {
	case a.directions <- d:
	default:
	}
	return nil
}

func choose(frame *board.Frame) (board.Direction, bool) {
	head := frame.Head()
	if head == nil {
		return "", false
	}

	candidates := []board.Direction{frame.Direction}
	for _, d := range board.Directions {
		if d != frame.Direction && d != frame.Direction.Reverse() {
			candidates = append(candidates, d)
		}
	}

	var (
		best     board.Direction
		bestDist int32 = -1
	)
	for _, d := range candidates {
		next := head.Add(d)
		if !next.Inside(frame.Width, frame.Height) || blocked(frame, next) {
			continue
		}
		dist := distance(next, frame.Food)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best, bestDist >= 0
}

// blocked reports whether moving to p hits the body. The tail is free unless
// p is the food, since eating keeps the tail in place.
func blocked(frame *board.Frame, p *board.Point) bool {
	body := frame.Body
	if !p.Equal(frame.Food) && len(body) > 0 {
		body = body[:len(body)-1]
	}
	for _, b := range body {
		if b.Equal(p) {
			return true
		}
	}
	return false
}

func distance(a, b *board.Point) int32 {
	if b == nil {
		return 0
	}
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
