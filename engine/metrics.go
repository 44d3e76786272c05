package engine

import (
	"github.com/battlesnakeio/arcade/board"
	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentSurface wraps a surface to time every render call under the given
// name.
func InstrumentSurface(name string, s Surface) Surface { return &metrics{name: name, s: s} }

var (
	ticksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "engine",
			Name:      "ticks_total",
			Help:      "Ticks applied to a running round.",
		},
	)
	foodEatenTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "engine",
			Name:      "food_eaten_total",
			Help:      "Food eaten across all rounds.",
		},
	)
	roundsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "engine",
			Name:      "rounds_total",
			Help:      "Rounds started.",
		},
	)
	deathsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "engine",
			Name:      "deaths_total",
			Help:      "Rounds ended, by death cause.",
		},
		[]string{"cause"},
	)
	renderCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "surface",
			Name:      "render_seconds",
			Help:      "Frames rendered by a surface.",
		},
		[]string{"surface"},
	)
)

func instrument(surface string) func() {
	t := prometheus.NewTimer(renderCalls.WithLabelValues(surface))
	return func() { t.ObserveDuration() }
}

func init() {
	prometheus.MustRegister(ticksTotal, foodEatenTotal, roundsTotal, deathsTotal, renderCalls)
}

type metrics struct {
	name string
	s    Surface
}

func (m *metrics) Render(frame *board.Frame) error {
	defer instrument(m.name)()
	return m.s.Render(frame)
}
