package commands

import (
	"context"
	"io/ioutil"
	"os"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/engine"
	"github.com/battlesnakeio/arcade/worker"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays snake in the terminal, steer with wasd or the arrow keys, quit with q or esc",
	RunE: func(c *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// termbox owns the terminal, logs must not land on it.
		if logFile != "" {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return errors.Wrap(err, "open log file")
			}
			defer f.Close()
			log.SetOutput(f)
		} else {
			log.SetOutput(ioutil.Discard)
		}

		if err := termbox.Init(); err != nil {
			return errors.Wrap(err, "init terminal")
		}
		defer termbox.Close()

		e, err := engine.New(cfg, engine.InstrumentSurface("terminal", terminalSurface{}))
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		directions := make(chan board.Direction, 16)
		go forwardKeys(setupEventQueue(), directions, cancel)

		r := worker.NewRunner(cfg, worker.NewSession(e, cfg.RestartDelay()), directions)
		err = r.Run(ctx)
		if err == context.Canceled {
			return nil
		}
		return err
	},
}
