package worker

import (
	"io/ioutil"
	"math/rand"
	"testing"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/engine"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetOutput(ioutil.Discard)
}

// wallConfig is a one row board where the starting snake faces the right
// wall, so the first tick always ends the round.
var wallConfig = config.Config{
	GridWidth:      4,
	GridHeight:     1,
	TicksPerSecond: 10,
}

func newEngine(t *testing.T, cfg config.Config, surface engine.Surface) *engine.Engine {
	e, err := engine.New(cfg, surface, engine.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	return e
}
