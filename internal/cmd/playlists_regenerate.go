package cmd

import (
	"context"
	"fmt"
)

// PlaylistsRegenerateCmd re-runs stored filters against the clip corpus
type PlaylistsRegenerateCmd struct {
	ID   string `help:"ID of one playlist to regenerate" default:""`
	Game string `help:"Regenerate every filter-backed playlist of this game" default:""`
}

// Run executes the regenerate command
func (p *PlaylistsRegenerateCmd) Run(cli *CLI) error {
	ctx := context.Background()

	switch {
	case p.ID != "":
		playlist, err := cli.Container.PlaylistService.Regenerate(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("failed to regenerate playlist: %w", err)
		}
		fmt.Printf("Playlist '%s' regenerated: %d clips\n", playlist.Name, len(playlist.ClipIDs))
	case p.Game != "":
		n, err := cli.Container.PlaylistService.RegenerateAll(ctx, p.Game)
		if err != nil {
			return fmt.Errorf("failed to regenerate playlists: %w", err)
		}
		fmt.Printf("%d playlists regenerated\n", n)
	default:
		return fmt.Errorf("pass --id or --game")
	}
	return nil
}
