package commands

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/engine"
	"github.com/battlesnakeio/arcade/worker"
	"github.com/davecgh/go-spew/spew"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	runRounds  = 1
	runFast    = false
	runTimeout time.Duration
	runDump    = false
	runMetrics = false
)

func init() {
	runCmd.Flags().IntVarP(&runRounds, "rounds", "r", runRounds, "stop after this many rounds, 0 runs until interrupted")
	runCmd.Flags().BoolVar(&runFast, "fast", runFast, "ignore the tick rate and run as fast as possible")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", runTimeout, "stop after this long, 0 disables")
	runCmd.Flags().BoolVar(&runDump, "dump", runDump, "dump the last frame when done")
	runCmd.Flags().BoolVar(&runMetrics, "metrics", runMetrics, "print engine metrics when done")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "runs rounds without a terminal, steered by the autopilot",
	RunE: func(c *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		pilot := worker.NewAutopilot()
		last := &lastFrame{}
		e, err := engine.New(cfg, engine.Surfaces(
			engine.InstrumentSurface("autopilot", pilot),
			last,
		))
		if err != nil {
			return err
		}

		r := worker.NewRunner(cfg, worker.NewSession(e, restartDelayFor(cfg, runFast)), pilot.Directions())
		r.MaxRounds = runRounds
		if runFast {
			r.Limiter = rate.NewLimiter(rate.Inf, 1)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		if runTimeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, runTimeout)
			defer cancel()
		}

		err = r.Run(ctx)
		if err != nil && err != context.Canceled && err != context.DeadlineExceeded {
			return err
		}

		log.WithFields(log.Fields{
			"Rounds":  r.Session.Rounds(),
			"RoundID": e.RoundID(),
			"Score":   last.frame.Score,
			"Turn":    last.frame.Turn,
		}).Info("run complete")

		if runDump {
			spew.Dump(last.frame)
		}
		if runMetrics {
			return writeMetrics(os.Stdout)
		}
		return nil
	},
}

// restartDelayFor drops the pause between rounds in fast mode, an unpaced
// runner would otherwise spin until the delay runs out.
func restartDelayFor(cfg config.Config, fast bool) time.Duration {
	if fast {
		return 0
	}
	return cfg.RestartDelay()
}

// lastFrame keeps the most recent frame for the summary.
type lastFrame struct {
	frame *board.Frame
}

func (l *lastFrame) Render(frame *board.Frame) error {
	l.frame = frame
	return nil
}

// writeMetrics prints the snake metric families in the text exposition format.
func writeMetrics(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "snake_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
