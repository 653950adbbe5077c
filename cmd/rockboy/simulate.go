package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rock-boy/internal/core"
	"github.com/vovakirdan/rock-boy/internal/games/rockboy"
)

var (
	flagTicks      int
	flagScript     string
	flagShowFrame  bool
	flagSimArena   bool
	flagSimConfig  string
	flagSimPreset  string
	flagFrameWidth int
	flagFrameRows  int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation headless and print a summary",
	Long: `Run the game without a terminal UI. The same seed and script always
produce the same run.

A script is a comma separated list of action:ticks steps played in order.
Actions are left, right, jump, restart, idle, and combinations joined
with '+'. Once the script runs out the rock stays idle.

Examples:
  rockboy simulate --ticks 600 --seed 7
  rockboy simulate --script "right:120,right+jump:20,idle:30" --frame
  rockboy simulate --arena --ticks 3000 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to run")
	simulateCmd.Flags().StringVar(&flagScript, "script", "", "Input script (action:ticks,...)")
	simulateCmd.Flags().BoolVar(&flagShowFrame, "frame", false, "Print the final frame")
	simulateCmd.Flags().BoolVar(&flagSimArena, "arena", false, "Simulate the bounded arena mode")
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom config YAML")
	simulateCmd.Flags().StringVar(&flagSimPreset, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simulateCmd.Flags().IntVar(&flagFrameWidth, "width", 80, "Frame width for --frame")
	simulateCmd.Flags().IntVar(&flagFrameRows, "height", 24, "Frame height for --frame")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if flagTicks <= 0 {
		return errors.New("--ticks must be positive")
	}
	script, err := parseScript(flagScript)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	rockboy.SetConfigPath(flagSimConfig)
	rockboy.SetDifficultyPreset(flagSimPreset)

	game := rockboy.New(flagSimArena)
	game.Reset(core.RuntimeConfig{
		ScreenW:  flagFrameWidth,
		ScreenH:  flagFrameRows,
		TickRate: flagFPS,
		Seed:     seed,
	})

	res := simulate(game, script, flagTicks)
	printSimSummary(cmd.OutOrStdout(), game, seed, res)

	if flagShowFrame {
		screen := core.NewScreen(flagFrameWidth, flagFrameRows)
		game.Render(screen)
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), screen.String())
	}
	return nil
}

// scriptStep holds a set of actions for a number of ticks.
type scriptStep struct {
	Actions []core.Action
	Ticks   int
}

var scriptActions = map[string]core.Action{
	"left":    core.ActionLeft,
	"right":   core.ActionRight,
	"jump":    core.ActionJump,
	"restart": core.ActionPrimary,
	"idle":    core.ActionNone,
}

// parseScript reads "right:120,right+jump:10,idle:5".
func parseScript(s string) ([]scriptStep, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var steps []scriptStep
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		name, count, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("script step %q: want action:ticks", part)
		}
		ticks, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || ticks <= 0 {
			return nil, fmt.Errorf("script step %q: ticks must be a positive integer", part)
		}

		step := scriptStep{Ticks: ticks}
		for _, a := range strings.Split(name, "+") {
			action, known := scriptActions[strings.ToLower(strings.TrimSpace(a))]
			if !known {
				return nil, fmt.Errorf("script step %q: unknown action %q", part, a)
			}
			if action != core.ActionNone {
				step.Actions = append(step.Actions, action)
			}
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// simResult summarises a headless run.
type simResult struct {
	Ticks     int
	GameOvers int
	Worlds    int // World transitions seen
	Final     core.GameState
}

// simulate steps the game, playing the script and then idling.
func simulate(game *rockboy.Game, script []scriptStep, ticks int) simResult {
	var res simResult
	frame := core.NewInputFrame()
	step, left := 0, 0
	if len(script) > 0 {
		left = script[0].Ticks
	}

	prev := game.State()
	for range ticks {
		frame.Clear()
		if step < len(script) {
			for _, a := range script[step].Actions {
				frame.Set(a)
			}
			left--
			if left == 0 {
				step++
				if step < len(script) {
					left = script[step].Ticks
				}
			}
		}

		st := game.Step(frame).State
		res.Ticks++
		if st.GameOver && !prev.GameOver {
			res.GameOvers++
		}
		if st.WorldLevel > prev.WorldLevel {
			res.Worlds++
		}
		prev = st
	}
	res.Final = prev
	return res
}

func printSimSummary(w io.Writer, game *rockboy.Game, seed int64, res simResult) {
	s := game.Sim()
	body := s.Body()
	hp := s.Health()

	fmt.Fprintf(w, "Mode:        %s\n", game.Title())
	fmt.Fprintf(w, "Seed:        %d\n", seed)
	fmt.Fprintf(w, "Ticks:       %d\n", res.Ticks)
	fmt.Fprintf(w, "State:       %s\n", s.Mode())
	fmt.Fprintf(w, "World:       %d (+%d)\n", res.Final.WorldLevel, res.Worlds)
	fmt.Fprintf(w, "Level:       %d %s\n", res.Final.Level, res.Final.Stage)
	fmt.Fprintf(w, "Score:       %d\n", res.Final.Score)
	fmt.Fprintf(w, "Health:      %.0f/%.0f\n", hp.Current, hp.Max)
	fmt.Fprintf(w, "Position:    %.1f, %.1f\n", body.X, body.Y)
	fmt.Fprintf(w, "Game overs:  %d\n", res.GameOvers)
}

