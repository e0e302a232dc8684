package cmd

import (
	"context"
	"fmt"
)

// PlaylistsAddClipCmd adds a clip to a playlist by hand
type PlaylistsAddClipCmd struct {
	ID   string `arg:"" help:"ID of the playlist"`
	Clip string `arg:"" help:"ID of the clip to add"`
}

// Run executes the add-clip command
func (p *PlaylistsAddClipCmd) Run(cli *CLI) error {
	if err := cli.Container.PlaylistService.AddClip(context.Background(), p.ID, p.Clip); err != nil {
		return fmt.Errorf("failed to add clip: %w", err)
	}

	fmt.Printf("Clip %s added to playlist %s\n", p.Clip, p.ID)
	return nil
}

// PlaylistsRemoveClipCmd removes a clip from a playlist
type PlaylistsRemoveClipCmd struct {
	ID   string `arg:"" help:"ID of the playlist"`
	Clip string `arg:"" help:"ID of the clip to remove"`
}

// Run executes the remove-clip command
func (p *PlaylistsRemoveClipCmd) Run(cli *CLI) error {
	if err := cli.Container.PlaylistService.RemoveClip(context.Background(), p.ID, p.Clip); err != nil {
		return fmt.Errorf("failed to remove clip: %w", err)
	}

	fmt.Printf("Clip %s removed from playlist %s\n", p.Clip, p.ID)
	return nil
}

// PlaylistsDelCmd deletes a playlist
type PlaylistsDelCmd struct {
	ID string `arg:"" help:"ID of the playlist to delete"`
}

// Run executes the del command
func (p *PlaylistsDelCmd) Run(cli *CLI) error {
	if err := cli.Container.PlaylistService.Delete(context.Background(), p.ID); err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	fmt.Printf("Playlist '%s' deleted\n", p.ID)
	return nil
}
