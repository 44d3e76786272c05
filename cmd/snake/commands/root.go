package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake runs the single player snake game",
	Version: version.Version,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	},
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

var (
	screenWidth  = config.ScreenWidth
	screenHeight = config.ScreenHeight
	blockSize    = config.BlockSize
	tickRate     = config.TickRate
	restartDelay = config.RestartDelay
	seed         int64
	logLevel     = "info"
	logFile      string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&screenWidth, "screen-width", screenWidth, "screen width in pixels")
	flags.IntVar(&screenHeight, "screen-height", screenHeight, "screen height in pixels")
	flags.IntVar(&blockSize, "block-size", blockSize, "pixels per grid cell")
	flags.IntVar(&tickRate, "tick-rate", tickRate, "ticks per second")
	flags.IntVar(&restartDelay, "restart-delay", restartDelay, "seconds between game over and the next round")
	flags.Int64Var(&seed, "seed", seed, "food placement seed, 0 picks one from the clock")
	flags.StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&logFile, "log-file", logFile, "write play logs to this file, they are discarded when empty")
}

// loadConfig builds the engine configuration from the flags.
func loadConfig() (config.Config, error) {
	cfg := config.FromScreen(screenWidth, screenHeight, blockSize, tickRate, restartDelay)
	cfg.Seed = seed
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Execute runs the root command
func Execute() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "prints the snake version",
	Run: func(c *cobra.Command, args []string) {
		fmt.Println(version.Version)
	},
}
