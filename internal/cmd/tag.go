package cmd

import (
	"context"
	"fmt"
)

// TagCmd activates a category at a video timestamp
type TagCmd struct {
	Game     string `arg:"" help:"ID of the game"`
	Category string `arg:"" help:"Category to activate (must exist in the blueprint)"`
	At       string `help:"Video timestamp (HH:MM:SS, MM:SS or milliseconds)" default:"0"`
}

// Run executes the tag command
func (t *TagCmd) Run(cli *CLI) error {
	atMs, err := parseTimestamp(t.At)
	if err != nil {
		return err
	}

	ctx := context.Background()
	session, err := cli.Container.OpenSession(ctx, t.Game, atMs)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	defer session.Close()

	result, err := session.Activate(ctx, t.Category, atMs)
	if err != nil {
		return fmt.Errorf("failed to activate %s: %w", t.Category, err)
	}

	if len(result.Opened) == 0 && len(result.Closed) == 0 {
		fmt.Printf("%s already open, nothing to do\n", t.Category)
		return nil
	}
	for _, m := range result.Closed {
		fmt.Printf("closed %s at %s (%s)\n", m.Category, formatOptionalEnd(m.EndMs), m.ID)
	}
	for _, m := range result.Opened {
		fmt.Printf("opened %s at %s (%s)\n", m.Category, formatTimestamp(m.StartMs), m.ID)
	}
	return nil
}
