package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rock-boy/internal/platform/tui"
	"github.com/vovakirdan/rock-boy/internal/registry"
	"github.com/vovakirdan/rock-boy/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs",
	Long: `Display the best runs for a mode, or a summary of every mode when
no mode is given.

Examples:
  rockboy scores
  rockboy scores rockboy --limit 20
  rockboy scores --interactive
  rockboy scores rockboy_arena --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table view")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if len(args) == 0 {
		printSummary(store)
		return
	}

	modeID := args[0]
	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'rockboy modes' to see available modes.")
		return
	}

	if flagClear {
		if err := store.ClearRuns(modeID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Printf("Cleared runs for %s\n", modeID)
		return
	}

	printRuns(store, modeID)
}

func printRuns(store *storage.Store, modeID string) {
	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		return
	}

	runs, err := store.TopRuns(modeID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'rockboy play %s' to set the first record!\n", modeID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "Rank", "Score", "World", "Stage", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, r := range runs {
		world := fmt.Sprintf("%d", r.WorldLevel)
		if r.Finished {
			world += "*"
		}
		fmt.Printf("  %-4d  %-8d  %-6s  %-8s  %s\n",
			i+1, r.Score, world, r.Stage, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("* reached the diamond stage")
}

func printSummary(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	modes := make([]string, 0, len(stats))
	for mode := range stats {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	fmt.Printf("  %-16s  %-5s  %-8s  %-8s  %-6s  %s\n", "Mode", "Runs", "Best", "Average", "World", "Last played")
	fmt.Printf("  %-16s  %-5s  %-8s  %-8s  %-6s  %s\n", "----", "----", "----", "-------", "-----", "-----------")
	for _, mode := range modes {
		s := stats[mode]
		fmt.Printf("  %-16s  %-5d  %-8d  %-8.0f  %-6d  %s\n",
			mode, s.Runs, s.BestScore, s.AvgScore, s.BestWorld, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
