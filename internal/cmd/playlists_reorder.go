package cmd

import (
	"context"
	"fmt"
)

// PlaylistsReorderCmd reorders a playlist's clips
type PlaylistsReorderCmd struct {
	ID    string `arg:"" help:"ID of the playlist"`
	Order string `arg:"" help:"Comma-separated clip IDs, a permutation of the current membership"`
}

// Run executes the reorder command
func (p *PlaylistsReorderCmd) Run(cli *CLI) error {
	order := splitList(p.Order)
	if err := cli.Container.PlaylistService.Reorder(context.Background(), p.ID, order); err != nil {
		return fmt.Errorf("failed to reorder playlist: %w", err)
	}

	fmt.Printf("Playlist %s reordered\n", p.ID)
	return nil
}
