package cmd

import (
	"context"
	"fmt"
)

// GamesDelCmd deletes a game
type GamesDelCmd struct {
	ID string `arg:"" help:"ID of the game to delete"`
}

// Run executes the del command
func (g *GamesDelCmd) Run(cli *CLI) error {
	if err := cli.Container.GameService.Delete(context.Background(), g.ID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	fmt.Printf("Game '%s' deleted\n", g.ID)
	return nil
}
