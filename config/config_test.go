package config

import (
	"os"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestFromScreenDefaults(t *testing.T) {
	c := FromScreen(600, 400, 20, 10, 5)
	require.Equal(t, int32(30), c.GridWidth)
	require.Equal(t, int32(20), c.GridHeight)
	require.NoError(t, c.Validate())
	require.Equal(t, 100*time.Millisecond, c.TickInterval())
	require.Equal(t, 5*time.Second, c.RestartDelay())
	require.Equal(t, rate.Limit(10), c.TickLimit())
}

func TestFromScreenDropsPartialCells(t *testing.T) {
	c := FromScreen(610, 419, 20, 10, 5)
	require.Equal(t, int32(30), c.GridWidth)
	require.Equal(t, int32(20), c.GridHeight)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		Name   string
		Config Config
	}{
		{Name: "narrow", Config: Config{GridWidth: 2, GridHeight: 5, TicksPerSecond: 10}},
		{Name: "flat", Config: Config{GridWidth: 5, GridHeight: 0, TicksPerSecond: 10}},
		{Name: "no ticks", Config: Config{GridWidth: 5, GridHeight: 5}},
		{Name: "negative delay", Config: Config{GridWidth: 5, GridHeight: 5, TicksPerSecond: 1, RestartDelaySeconds: -1}},
	}

	for _, test := range tests {
		err := test.Config.Validate()
		require.Error(t, err, test.Name)
		require.Equal(t, ErrInvalidConfig, errors.Cause(err), test.Name)
	}
}

func TestGetEnvInt(t *testing.T) {
	require.NoError(t, os.Setenv("SNAKE_TEST_INT", "42"))
	defer os.Unsetenv("SNAKE_TEST_INT")
	require.Equal(t, 42, getEnvInt("SNAKE_TEST_INT", 7))

	require.NoError(t, os.Setenv("SNAKE_TEST_INT", "nope"))
	require.Equal(t, 7, getEnvInt("SNAKE_TEST_INT", 7))
	require.Equal(t, 3, getEnvInt("SNAKE_TEST_UNSET", 3))
}

func TestFromScreenRejectsBlockSize(t *testing.T) {
	for _, block := range []int{0, -20} {
		c := FromScreen(600, 400, block, 10, 5)
		require.Equal(t, int32(0), c.GridWidth, "block %d", block)
		require.Equal(t, int32(0), c.GridHeight, "block %d", block)
		err := c.Validate()
		require.Error(t, err, "block %d", block)
		require.Equal(t, ErrInvalidConfig, errors.Cause(err), "block %d", block)
	}
}
