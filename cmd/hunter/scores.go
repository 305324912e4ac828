package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/monster-hunter/internal/platform/tui"
	"github.com/vovakirdan/monster-hunter/internal/storage"
)

var (
	flagRecent      bool
	flagInteractive bool
	flagClear       bool
	flagLimit       int
	flagRunID       string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history and high scores",
	Long: `Display the best runs, or the latest ones with --recent.

Examples:
  hunter scores
  hunter scores --recent --limit 20
  hunter scores --id 3f2c9a4e-8d1b-4c3a-9a0e-2b6f1d7e5c41
  hunter scores -i
  hunter scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the history in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().StringVar(&flagRunID, "id", "", "Show a single run by its ID")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagClear:
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Run history cleared.")
		return nil

	case flagRunID != "":
		return printRun(out, store, flagRunID)

	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printRuns(out, store)
}

// printRuns lists the best or latest runs as a text table.
func printRuns(out io.Writer, store *storage.Store) error {
	title := "High Scores"
	list := store.TopRuns
	if flagRecent {
		title = "Recent Runs"
		list = store.RecentRuns
	}
	runs, err := list(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintf(out, "Monster Hunter - %s\n", title)
	if best, err := store.HighScore(); err == nil && best > 0 {
		fmt.Fprintf(out, "Best: %d\n", best)
	}
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'hunter play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-8s  %-10s  %-16s  %s\n", "Rank", "Score", "Level", "Outcome", "Difficulty", "Date", "ID")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-8s  %-10s  %-16s  %s\n", "----", "-----", "-----", "-------", "----------", "----", "--")

	for i, r := range runs {
		dateStr := r.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-8d  %-5d  %-8s  %-10s  %-16s  %s\n",
			i+1, r.Score, r.Level+1, r.Outcome, r.Difficulty, dateStr, r.ID)
	}

	fmt.Fprintln(out)
	if stats, err := store.Stats(); err == nil {
		fmt.Fprintf(out, "Runs: %d  Victories: %d\n", stats.Runs, stats.Victories)
	}
	return nil
}

// printRun shows every recorded field of one run.
func printRun(out io.Writer, store *storage.Store, id string) error {
	r, err := store.RunByID(id)
	if errors.Is(err, storage.ErrRunNotFound) {
		return fmt.Errorf("no run with id %s", id)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "id:         %s\n", r.ID)
	fmt.Fprintf(out, "date:       %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "outcome:    %s\n", r.Outcome)
	fmt.Fprintf(out, "score:      %d\n", r.Score)
	fmt.Fprintf(out, "level:      %d\n", r.Level+1)
	fmt.Fprintf(out, "difficulty: %s\n", r.Difficulty)
	fmt.Fprintf(out, "seed:       %d\n", r.Seed)
	fmt.Fprintf(out, "played:     %s\n", (time.Duration(r.Ticks) * time.Second / 60).Round(time.Second))
	return nil
}
