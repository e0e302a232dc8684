package cmd

import (
	"context"
	"fmt"
)

// ClipsDelCmd deletes a clip
type ClipsDelCmd struct {
	ID string `arg:"" help:"ID of the clip to delete"`
}

// Run executes the del command
func (c *ClipsDelCmd) Run(cli *CLI) error {
	if err := cli.Container.ClipService.DeleteClip(context.Background(), c.ID); err != nil {
		return fmt.Errorf("failed to delete clip: %w", err)
	}

	fmt.Printf("Clip '%s' deleted\n", c.ID)
	return nil
}
