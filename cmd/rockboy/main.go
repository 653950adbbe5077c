// rockboy is a terminal platformer about a rock that grows into a diamond.
//
// Usage:
//
//	rockboy play [mode]        - Play a mode, or pick one from the menu
//	rockboy modes              - List available modes
//	rockboy scores [mode]      - Show the best runs
//	rockboy serve              - Start SSH server for remote play
//	rockboy simulate           - Run the simulation headless
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.rockboy/runs.db)
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Registers the game modes
	"github.com/vovakirdan/rock-boy/internal/games/rockboy"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rockboy",
	Short: "Super Rock Boy - roll, jump and grow in your terminal",
	Long: `Super Rock Boy is a side-scrolling platformer played in the terminal.
Roll over the ground, collect stars to gain experience, and grow from a
pebble into a diamond while dodging spikes and pickaxe-swinging miners.

Available commands:
  play      - Play a mode directly or from the menu
  modes     - Show all available modes
  scores    - View the best runs
  serve     - Start SSH server for remote play
  simulate  - Run the simulation without a terminal UI

Examples:
  rockboy play
  rockboy play --arena
  rockboy scores rockboy
  rockboy serve --ssh :2222
  rockboy simulate --ticks 600 --script "right:120,jump:1,right:60"`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger, err := newLogger(flagLogLevel)
		if err != nil {
			return err
		}
		log.SetDefault(logger)
		rockboy.SetLogger(logger)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rockboy/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the stderr logger shared by every command.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rockboy",
		Level:           lvl,
	}), nil
}
