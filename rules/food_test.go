package rules

import (
	"testing"

	"github.com/battlesnakeio/arcade/board"
	"github.com/stretchr/testify/require"
)

func TestPlaceFoodAvoidsSnake(t *testing.T) {
	rng := testRand()
	s := StartingSnake(6, 3)
	for i := 0; i < 200; i++ {
		p := PlaceFood(rng, 6, 3, s)
		require.NotNil(t, p)
		require.True(t, p.Inside(6, 3))
		require.False(t, s.Occupies(p), "food placed on snake at %v", p)
	}
}

func TestPlaceFoodLastFreeCell(t *testing.T) {
	s := snakeOf(
		board.Point{X: 0, Y: 0},
		board.Point{X: 1, Y: 0},
		board.Point{X: 2, Y: 0},
		board.Point{X: 2, Y: 1},
		board.Point{X: 1, Y: 1},
	)
	p := PlaceFood(testRand(), 3, 2, s)
	require.Equal(t, &board.Point{X: 0, Y: 1}, p)
}

func TestPlaceFoodFullBoard(t *testing.T) {
	s := snakeOf(
		board.Point{X: 0, Y: 0},
		board.Point{X: 1, Y: 0},
		board.Point{X: 2, Y: 0},
	)
	require.Nil(t, PlaceFood(testRand(), 3, 1, s))
}

func TestGetUnoccupiedPoints(t *testing.T) {
	s := snakeOf(
		board.Point{X: 0, Y: 0},
		board.Point{X: 1, Y: 0},
	)
	points := getUnoccupiedPoints(2, 2, s)
	require.ElementsMatch(t, []*board.Point{
		{X: 0, Y: 1},
		{X: 1, Y: 1},
	}, points)
}
