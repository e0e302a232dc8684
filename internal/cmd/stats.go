package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// StatsCmd shows per-category tagging statistics
type StatsCmd struct {
	Game string `arg:"" help:"ID of the game"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	ctx := context.Background()

	game, err := cli.Container.GameService.Get(ctx, s.Game)
	if err != nil {
		return fmt.Errorf("failed to load game: %w", err)
	}

	stats, err := cli.Container.StatsService.ForGame(ctx, s.Game)
	if err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	fmt.Printf("Tagging stats - %s\n\n", game.Name)
	if len(stats) == 0 {
		fmt.Println("No moments tagged yet.")
		return nil
	}

	fmt.Println("Category      Count  Open   Total       By quarter")
	fmt.Println(strings.Repeat("─", 60))
	for _, st := range stats {
		fmt.Printf("%-13s %-6d %-6d %-11s %s\n",
			st.Category, st.Count, st.OpenCount,
			formatTimestamp(st.TotalDurationMs), formatByQuarter(st.ByQuarter))
	}
	return nil
}

// formatByQuarter renders quarter counts as "Q1:3 Q3:1" in quarter order.
func formatByQuarter(byQuarter map[int]int) string {
	quarters := make([]int, 0, len(byQuarter))
	for q := range byQuarter {
		quarters = append(quarters, q)
	}
	sort.Ints(quarters)

	parts := make([]string, 0, len(quarters))
	for _, q := range quarters {
		parts = append(parts, fmt.Sprintf("Q%d:%d", q, byQuarter[q]))
	}
	return strings.Join(parts, " ")
}
