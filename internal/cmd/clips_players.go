package cmd

import (
	"context"
	"fmt"
	"strings"
)

// ClipsPlayersCmd adds or removes a player on a clip
type ClipsPlayersCmd struct {
	Clip   string `arg:"" help:"ID of the clip"`
	Add    string `help:"Player ID to add" default:""`
	Remove string `help:"Player ID to remove" default:""`
}

// Run executes the players command
func (c *ClipsPlayersCmd) Run(cli *CLI) error {
	ctx := context.Background()

	if c.Add == "" && c.Remove == "" {
		clip, err := cli.Container.ClipService.Get(ctx, c.Clip)
		if err != nil {
			return fmt.Errorf("failed to load clip: %w", err)
		}
		if len(clip.PlayerIDs) == 0 {
			fmt.Println("No players.")
			return nil
		}
		fmt.Println(strings.Join(clip.PlayerIDs, "\n"))
		return nil
	}

	if c.Add != "" {
		if err := cli.Container.ClipService.AddPlayer(ctx, c.Clip, c.Add); err != nil {
			return fmt.Errorf("failed to add player: %w", err)
		}
		fmt.Printf("Player '%s' added to clip %s\n", c.Add, c.Clip)
	}
	if c.Remove != "" {
		if err := cli.Container.ClipService.RemovePlayer(ctx, c.Clip, c.Remove); err != nil {
			return fmt.Errorf("failed to remove player: %w", err)
		}
		fmt.Printf("Player '%s' removed from clip %s\n", c.Remove, c.Clip)
	}
	return nil
}
