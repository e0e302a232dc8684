package cmd

import (
	"context"
	"fmt"
)

// PlaylistsListCmd lists a game's playlists
type PlaylistsListCmd struct {
	Game string `arg:"" help:"ID of the game"`
}

// Run executes the list command
func (p *PlaylistsListCmd) Run(cli *CLI) error {
	playlists, err := cli.Container.PlaylistService.List(context.Background(), p.Game)
	if err != nil {
		return fmt.Errorf("failed to list playlists: %w", err)
	}

	if len(playlists) == 0 {
		fmt.Println("No playlists.")
		return nil
	}

	for _, playlist := range playlists {
		kind := "manual"
		if playlist.Filter != nil {
			kind = "filter"
		}
		fmt.Printf("%s  %-20s %s, %d clips\n", playlist.ID, playlist.Name, kind, len(playlist.ClipIDs))
	}
	return nil
}
