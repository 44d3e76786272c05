package engine

import (
	"testing"

	"github.com/battlesnakeio/arcade/board"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestSurfacesRendersAll(t *testing.T) {
	var calls []string
	first := SurfaceFunc(func(*board.Frame) error {
		calls = append(calls, "first")
		return errors.New("first failed")
	})
	second := SurfaceFunc(func(*board.Frame) error {
		calls = append(calls, "second")
		return errors.New("second failed")
	})

	err := Surfaces(first, nil, second).Render(&board.Frame{})
	require.EqualError(t, err, "first failed")
	require.Equal(t, []string{"first", "second"}, calls)
}

func TestInstrumentSurface(t *testing.T) {
	rendered := 0
	s := InstrumentSurface("test", SurfaceFunc(func(*board.Frame) error {
		rendered++
		return nil
	}))
	before := testutil.CollectAndCount(renderCalls)

	require.NoError(t, s.Render(&board.Frame{}))
	require.Equal(t, 1, rendered)
	require.True(t, testutil.CollectAndCount(renderCalls) >= before)
	require.True(t, testutil.CollectAndCount(renderCalls) >= 1)
}

func TestEngineCounters(t *testing.T) {
	rounds := testutil.ToFloat64(roundsTotal)
	ticks := testutil.ToFloat64(ticksTotal)
	eaten := testutil.ToFloat64(foodEatenTotal)
	walls := testutil.ToFloat64(deathsTotal.WithLabelValues("wall-collision"))

	e, _ := newTestEngine(t, commonConfig, 1)
	e.food = &board.Point{X: 6, Y: 2}
	require.NoError(t, e.Tick())
	for e.Status() == "running" {
		require.NoError(t, e.Tick())
	}

	require.Equal(t, rounds+1, testutil.ToFloat64(roundsTotal))
	require.Equal(t, ticks+float64(e.Turn()), testutil.ToFloat64(ticksTotal))
	require.True(t, testutil.ToFloat64(foodEatenTotal) >= eaten+1)
	require.Equal(t, walls+1, testutil.ToFloat64(deathsTotal.WithLabelValues("wall-collision")))
}
