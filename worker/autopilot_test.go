package worker

import (
	"testing"
	"time"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/config"
	"github.com/stretchr/testify/require"
)

func TestChoose(t *testing.T) {
	tests := []struct {
		Name     string
		Frame    *board.Frame
		Expected board.Direction
	}{
		{
			Name: "turns towards food",
			Frame: &board.Frame{
				Width: 10, Height: 10,
				Body:      []*board.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
				Food:      &board.Point{X: 5, Y: 1},
				Direction: board.DirectionRight,
			},
			Expected: board.DirectionUp,
		},
		{
			Name: "keeps heading on ties",
			Frame: &board.Frame{
				Width: 10, Height: 10,
				Body:      []*board.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
				Food:      &board.Point{X: 0, Y: 5},
				Direction: board.DirectionRight,
			},
			Expected: board.DirectionRight,
		},
		{
			Name: "avoids the wall",
			Frame: &board.Frame{
				Width: 10, Height: 10,
				Body:      []*board.Point{{X: 9, Y: 0}, {X: 8, Y: 0}, {X: 7, Y: 0}},
				Food:      &board.Point{X: 9, Y: 0},
				Direction: board.DirectionRight,
			},
			Expected: board.DirectionDown,
		},
		{
			Name: "avoids the body",
			Frame: &board.Frame{
				Width: 10, Height: 10,
				Body: []*board.Point{
					{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 6, Y: 4},
				},
				Food:      &board.Point{X: 9, Y: 5},
				Direction: board.DirectionUp,
			},
			Expected: board.DirectionUp,
		},
	}

	for _, test := range tests {
		d, ok := choose(test.Frame)
		require.True(t, ok, test.Name)
		require.Equal(t, test.Expected, d, test.Name)
		require.NotEqual(t, test.Frame.Direction.Reverse(), d, test.Name)
	}
}

func TestChooseNoSafeMove(t *testing.T) {
	_, ok := choose(&board.Frame{
		Width: 3, Height: 1,
		Body:      []*board.Point{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}},
		Direction: board.DirectionRight,
	})
	require.False(t, ok)
}

func TestAutopilotEats(t *testing.T) {
	a := NewAutopilot()
	e := newEngine(t, config.Config{GridWidth: 10, GridHeight: 10, TicksPerSecond: 10}, a)
	r := NewRunner(wallConfig, NewSession(e, 0), a.Directions())
	r.Now = func() time.Time { return time.Unix(0, 0) }

	for i := 0; i < 200 && e.Score() == 0; i++ {
		require.NoError(t, r.step())
	}
	require.Equal(t, 1, e.Score())
	require.Equal(t, 0, r.Session.Rounds())
}
