package cmd

import (
	"context"
	"fmt"
	"strings"
)

// ClipsListCmd lists a game's clips
type ClipsListCmd struct {
	Game string `arg:"" help:"ID of the game"`
}

// Run executes the list command
func (c *ClipsListCmd) Run(cli *CLI) error {
	clips, err := cli.Container.ClipService.List(context.Background(), c.Game)
	if err != nil {
		return fmt.Errorf("failed to list clips: %w", err)
	}

	if len(clips) == 0 {
		fmt.Println("No clips.")
		return nil
	}

	for _, clip := range clips {
		line := fmt.Sprintf("%s  %s - %s", clip.ID, formatTimestamp(clip.StartMs), formatTimestamp(clip.EndMs))
		if clip.Title != "" {
			line += "  " + clip.Title
		}
		if len(clip.Tags) > 0 {
			line += "  #" + strings.Join(clip.Tags, " #")
		}
		if len(clip.PlayerIDs) > 0 {
			line += "  [" + strings.Join(clip.PlayerIDs, ", ") + "]"
		}
		fmt.Println(line)
	}
	return nil
}
