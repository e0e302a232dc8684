package cmd

import (
	"context"
	"fmt"
)

// GamesAddCmd registers a new game
type GamesAddCmd struct {
	Name  string `arg:"" help:"Name of the game (e.g. '2026-02-14 vs Riverside')"`
	Video string `help:"Path to the recording; the duration is probed with ffprobe" default:""`
}

// Run executes the add command
func (g *GamesAddCmd) Run(cli *CLI) error {
	game, err := cli.Container.GameService.Register(context.Background(), g.Name, g.Video)
	if err != nil {
		return fmt.Errorf("failed to register game: %w", err)
	}

	fmt.Printf("Game '%s' registered (id: %s)\n", game.Name, game.ID)
	if game.VideoDurationMs > 0 {
		fmt.Printf("Video duration: %s\n", formatTimestamp(game.VideoDurationMs))
	}
	return nil
}
