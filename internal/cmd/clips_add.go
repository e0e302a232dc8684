package cmd

import (
	"context"
	"fmt"
	"strings"

	"filmroom/internal/services"
)

// ClipsAddCmd creates a clip over an explicit range
type ClipsAddCmd struct {
	Game    string `arg:"" help:"ID of the game"`
	Start   string `arg:"" help:"Start timestamp"`
	End     string `arg:"" help:"End timestamp"`
	Title   string `help:"Clip title" default:""`
	Notes   string `help:"Clip notes" default:""`
	Tags    string `help:"Comma-separated outcome tags (e.g. 'score,fast-break')" default:""`
	Players string `help:"Comma-separated player IDs; omit to derive from overlapping moments, pass 'none' for an empty list" default:""`
}

// Run executes the add command
func (c *ClipsAddCmd) Run(cli *CLI) error {
	startMs, err := parseTimestamp(c.Start)
	if err != nil {
		return err
	}
	endMs, err := parseTimestamp(c.End)
	if err != nil {
		return err
	}

	params := services.CreateClipParams{
		GameID:  c.Game,
		StartMs: startMs,
		EndMs:   endMs,
		Title:   c.Title,
		Notes:   c.Notes,
		Tags:    splitList(c.Tags),
	}
	switch c.Players {
	case "":
		// nil: derive from overlapping moments
	case "none":
		params.PlayerIDs = []string{}
	default:
		params.PlayerIDs = splitList(c.Players)
	}

	clip, err := cli.Container.ClipService.CreateClip(context.Background(), params)
	if err != nil {
		return fmt.Errorf("failed to create clip: %w", err)
	}

	fmt.Printf("Clip %s created: %s - %s\n", clip.ID, formatTimestamp(clip.StartMs), formatTimestamp(clip.EndMs))
	if len(clip.PlayerIDs) > 0 {
		fmt.Printf("Players: %s\n", strings.Join(clip.PlayerIDs, ", "))
	}
	return nil
}

// splitList parses a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
