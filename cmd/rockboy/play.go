package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rock-boy/internal/audio"
	"github.com/vovakirdan/rock-boy/internal/core"
	"github.com/vovakirdan/rock-boy/internal/games/rockboy"
	"github.com/vovakirdan/rock-boy/internal/platform/tui"
	"github.com/vovakirdan/rock-boy/internal/registry"
	"github.com/vovakirdan/rock-boy/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagArena      bool
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing. Without a mode argument a menu lets you pick one
and returns to it after each run.

Controls:
  A/D or Left/Right  - Roll
  W/Up               - Jump (hold for a higher jump)
  Space/Enter        - Restart after game over
  P                  - Pause
  Esc/B              - Back to menu (when paused or over)
  ] / [              - Debug: level up / down
  \                  - Debug: toggle overlay
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Fewer and slower miners, fewer spikes
  normal - Defaults from the config file
  hard   - More miners hitting harder
  fixed  - No scaling by world level

Examples:
  rockboy play
  rockboy play rockboy
  rockboy play --arena
  rockboy play --difficulty hard --mute
  rockboy play --config ./my-rockboy.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagArena, "arena", false, "Play the bounded arena mode")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 1.0, "Sound volume (0 to 1)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := ""
	switch {
	case len(args) == 1:
		gameID = args[0]
	case flagArena:
		gameID = rockboy.IDArena
	}

	if gameID != "" && !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'rockboy modes' to see available modes.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty for games before creation
	rockboy.SetConfigPath(flagConfig)
	rockboy.SetDifficultyPreset(flagDifficulty)

	player, closeSound, err := audio.Open(flagMute, flagVolume, log.Default())
	if err != nil {
		log.Warn("sound disabled", "err", err)
	}
	defer closeSound()
	rockboy.SetSound(player)

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		log.Warn("could not open run database", "path", flagDBPath, "err", err)
		store = nil
	}

	var runErr error
	if gameID == "" {
		runErr = tui.RunSession(store, cfg, log.Default())
	} else {
		game, createErr := registry.Create(gameID)
		if createErr != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", createErr)
			os.Exit(1)
		}
		runErr = tui.Run(game, store, cfg, log.Default())
	}

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeSound()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
