package rules

import (
	"math/rand"

	"github.com/battlesnakeio/arcade/board"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func snakeOf(points ...board.Point) *board.Snake {
	s := &board.Snake{}
	for i := range points {
		p := points[i]
		s.Body = append(s.Body, &p)
	}
	return s
}
