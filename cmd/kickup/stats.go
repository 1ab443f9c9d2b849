package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"kickup/internal/progression"
	"kickup/internal/storage"
)

var flagRunLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show leaderboard, achievements and recent runs",
	Long: `Display the stored leaderboard, achievement progress and the most
recent run history.

Examples:
  kickup stats
  kickup stats --runs 20`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRunLimit, "runs", 10, "Number of recent runs to show")
}

func runStats(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "kickup",
	})

	store, err := storage.Open(flagDBPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progression database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ledger := progression.NewLedger(store, logger)
	ledger.Load()
	snap := ledger.Snapshot()

	fmt.Printf("Player: %s\n", snap.PlayerName)
	fmt.Printf("Bank: %d coins  ·  Best: %ds  ·  Games: %d  ·  Streak: day %d\n",
		snap.CollectedCoins, snap.HighScore, snap.TotalGamesPlayed, snap.CurrentStreak)
	fmt.Println()

	printLeaderboard(snap.Leaderboard)
	printAchievements(snap.Achievements)
	printRuns(store)
}

func printLeaderboard(entries []progression.LeaderboardEntry) {
	fmt.Println("Leaderboard")
	if len(entries) == 0 {
		fmt.Println("  no runs recorded yet")
		fmt.Println()
		return
	}

	fmt.Printf("  %-14s  %-10s  %-12s  %-10s  %s\n", "Player", "Best Time", "When", "Best Coins", "When")
	for _, e := range entries {
		fmt.Printf("  %-14s  %-10s  %-12s  %-10d  %s\n",
			e.Player,
			fmt.Sprintf("%ds", e.BestTimeSecs),
			e.BestTimeAt.Format("2006-01-02"),
			e.BestCoins,
			e.BestCoinsAt.Format("2006-01-02"),
		)
	}
	fmt.Println()
}

func printAchievements(achievements []progression.Achievement) {
	fmt.Println("Achievements")
	for _, a := range achievements {
		mark := " "
		if a.Completed {
			mark = "✓"
		}
		fmt.Printf("  [%s] %-16s %d/%d (reward %d)\n", mark, a.Name, a.Progress, a.Requirement, a.Reward)
	}
	fmt.Println()
}

func printRuns(store *storage.Store) {
	runs, err := store.TopRuns("", flagRunLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println("Recent best runs")
	if len(runs) == 0 {
		fmt.Println("  no runs recorded yet")
		return
	}

	fmt.Printf("  %-4s  %-14s  %-8s  %-6s  %-8s  %s\n", "Rank", "Player", "Time", "Coins", "Skin", "Date")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-14s  %-8s  %-6d  %-8s  %s\n",
			i+1, r.Player, fmt.Sprintf("%ds", r.ScoreSecs), r.Coins, r.Skin,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
