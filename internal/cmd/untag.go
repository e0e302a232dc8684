package cmd

import (
	"context"
	"fmt"
)

// UntagCmd deactivates a category at a video timestamp
type UntagCmd struct {
	Game     string `arg:"" help:"ID of the game"`
	Category string `arg:"" help:"Category to deactivate"`
	At       string `help:"Video timestamp (HH:MM:SS, MM:SS or milliseconds)" default:"0"`
}

// Run executes the untag command
func (u *UntagCmd) Run(cli *CLI) error {
	atMs, err := parseTimestamp(u.At)
	if err != nil {
		return err
	}

	ctx := context.Background()
	session, err := cli.Container.OpenSession(ctx, u.Game, atMs)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	defer session.Close()

	result, err := session.Deactivate(ctx, u.Category, atMs)
	if err != nil {
		return fmt.Errorf("failed to deactivate %s: %w", u.Category, err)
	}

	if len(result.Closed) == 0 {
		fmt.Printf("%s has nothing open, nothing to do\n", u.Category)
		return nil
	}
	for _, m := range result.Closed {
		fmt.Printf("closed %s at %s (%s)\n", m.Category, formatOptionalEnd(m.EndMs), m.ID)
	}
	return nil
}
