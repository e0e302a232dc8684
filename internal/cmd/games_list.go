package cmd

import (
	"context"
	"fmt"
)

// GamesListCmd lists registered games
type GamesListCmd struct{}

// Run executes the list command
func (g *GamesListCmd) Run(cli *CLI) error {
	games, err := cli.Container.GameService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list games: %w", err)
	}

	if len(games) == 0 {
		fmt.Println("No games registered. Use 'filmroom games add' to register one.")
		return nil
	}

	for _, game := range games {
		duration := "unknown duration"
		if game.VideoDurationMs > 0 {
			duration = formatTimestamp(game.VideoDurationMs)
		}
		fmt.Printf("%s  %s  (%s)\n", game.ID, game.Name, duration)
	}
	return nil
}
