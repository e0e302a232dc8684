package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"filmroom/internal/domain"
)

// PlaylistsCreateCmd creates a playlist
type PlaylistsCreateCmd struct {
	Game string `arg:"" help:"ID of the game"`
	Name string `arg:"" help:"Name of the playlist"`

	Clips string `help:"Comma-separated clip IDs for a manual playlist (no stored filter)" default:""`

	Players     string `help:"Filter: comma-separated player IDs (any match)" default:""`
	Categories  string `help:"Filter: comma-separated moment categories (any match)" default:""`
	LayerTypes  string `help:"Filter: comma-separated layer types (any match)" default:""`
	Quarters    string `help:"Filter: comma-separated quarter numbers (any match)" default:""`
	Outcomes    string `help:"Filter: comma-separated outcome tags (any match)" default:""`
	MinDuration string `help:"Filter: minimum clip duration (MM:SS or milliseconds)" default:""`
	MaxDuration string `help:"Filter: maximum clip duration (MM:SS or milliseconds)" default:""`
}

// Run executes the create command
func (p *PlaylistsCreateCmd) Run(cli *CLI) error {
	ctx := context.Background()

	if p.Clips != "" {
		playlist, err := cli.Container.PlaylistService.CreateManual(ctx, p.Game, p.Name, splitList(p.Clips))
		if err != nil {
			return fmt.Errorf("failed to create playlist: %w", err)
		}
		fmt.Printf("Playlist '%s' created with %d clips (id: %s)\n", p.Name, len(playlist.ClipIDs), playlist.ID)
		return nil
	}

	spec, err := p.filterSpec()
	if err != nil {
		return err
	}
	if spec.IsEmpty() {
		return fmt.Errorf("no filter given: pass --clips for a manual playlist or at least one filter flag")
	}

	playlist, err := cli.Container.PlaylistService.CreateFromFilter(ctx, p.Game, p.Name, spec)
	if err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}

	fmt.Printf("Playlist '%s' created with %d matching clips (id: %s)\n", p.Name, len(playlist.ClipIDs), playlist.ID)
	return nil
}

func (p *PlaylistsCreateCmd) filterSpec() (domain.FilterSpec, error) {
	spec := domain.FilterSpec{
		PlayerIDs:  splitList(p.Players),
		Categories: splitList(p.Categories),
		LayerTypes: splitList(p.LayerTypes),
		Outcomes:   splitList(p.Outcomes),
	}

	for _, q := range splitList(p.Quarters) {
		n, err := strconv.Atoi(strings.TrimSpace(q))
		if err != nil || n < 1 {
			return spec, fmt.Errorf("invalid quarter %q", q)
		}
		spec.Quarters = append(spec.Quarters, n)
	}

	if p.MinDuration != "" {
		ms, err := parseTimestamp(p.MinDuration)
		if err != nil {
			return spec, err
		}
		spec.MinDurationMs = ms
	}
	if p.MaxDuration != "" {
		ms, err := parseTimestamp(p.MaxDuration)
		if err != nil {
			return spec, err
		}
		spec.MaxDurationMs = ms
	}
	return spec, nil
}
