package cmd

import (
	"context"
	"fmt"
)

// MomentsCloseCmd closes one open moment
type MomentsCloseCmd struct {
	Game   string `arg:"" help:"ID of the game"`
	Moment string `arg:"" help:"ID of the moment to close"`
	At     string `arg:"" help:"End timestamp (HH:MM:SS, MM:SS or milliseconds)"`
}

// Run executes the close command
func (m *MomentsCloseCmd) Run(cli *CLI) error {
	atMs, err := parseTimestamp(m.At)
	if err != nil {
		return err
	}

	ctx := context.Background()
	session, err := cli.Container.OpenSession(ctx, m.Game, atMs)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	defer session.Close()

	if err := session.CloseMoment(ctx, m.Moment, atMs); err != nil {
		return fmt.Errorf("failed to close moment: %w", err)
	}

	fmt.Printf("Moment %s closed at %s\n", m.Moment, formatTimestamp(atMs))
	return nil
}
