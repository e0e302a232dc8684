package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"filmroom/internal/domain"
)

// PlaylistsShowCmd shows a playlist's clips with their film context
type PlaylistsShowCmd struct {
	ID string `arg:"" help:"ID of the playlist"`
}

// Run executes the show command
func (p *PlaylistsShowCmd) Run(cli *CLI) error {
	ctx := context.Background()

	playlist, err := cli.Container.PlaylistService.Get(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("failed to load playlist: %w", err)
	}

	fmt.Printf("Playlist %s (%d clips)\n\n", playlist.Name, len(playlist.ClipIDs))

	for i, clipID := range playlist.ClipIDs {
		cc, err := cli.Container.PlaylistService.Annotate(ctx, clipID)
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Printf("%2d. %s  (clip deleted)\n", i+1, clipID)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to annotate clip: %w", err)
		}

		line := fmt.Sprintf("%2d. %s  Q%d  %s - %s", i+1, cc.Clip.ID, cc.Quarter,
			formatTimestamp(cc.Clip.StartMs), formatTimestamp(cc.Clip.EndMs))
		if cc.Moment != nil {
			line += "  " + cc.Moment.Category
		}
		if cc.Clip.Title != "" {
			line += "  " + cc.Clip.Title
		}
		if len(cc.Clip.PlayerIDs) > 0 {
			line += "  [" + strings.Join(cc.Clip.PlayerIDs, ", ") + "]"
		}
		fmt.Println(line)
	}
	return nil
}
