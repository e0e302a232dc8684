package cmd

import (
	"context"
	"fmt"
)

// MomentsRetimeCmd corrects a closed moment's interval
type MomentsRetimeCmd struct {
	Game   string `arg:"" help:"ID of the game"`
	Moment string `arg:"" help:"ID of the moment to retime"`
	Start  string `arg:"" help:"New start timestamp"`
	End    string `arg:"" help:"New end timestamp"`
}

// Run executes the retime command
func (m *MomentsRetimeCmd) Run(cli *CLI) error {
	startMs, err := parseTimestamp(m.Start)
	if err != nil {
		return err
	}
	endMs, err := parseTimestamp(m.End)
	if err != nil {
		return err
	}

	ctx := context.Background()
	session, err := cli.Container.OpenSession(ctx, m.Game, endMs)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	defer session.Close()

	if err := session.RetimeMoment(ctx, m.Moment, startMs, endMs); err != nil {
		return fmt.Errorf("failed to retime moment: %w", err)
	}

	fmt.Printf("Moment %s retimed to %s - %s\n", m.Moment, formatTimestamp(startMs), formatTimestamp(endMs))
	return nil
}
