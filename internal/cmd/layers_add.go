package cmd

import (
	"context"
	"fmt"
)

// LayersAddCmd attaches a point event to a moment
type LayersAddCmd struct {
	Game   string `arg:"" help:"ID of the game"`
	Moment string `arg:"" help:"ID of the moment"`
	Type   string `arg:"" help:"Event type (e.g. shot, turnover, whistle)"`
	At     string `help:"Video timestamp of the event; omit for an untimed annotation" default:""`
	Value  string `help:"Free-form value (e.g. made, missed)" default:""`
}

// Run executes the add command
func (l *LayersAddCmd) Run(cli *CLI) error {
	var timestampMs *int64
	if l.At != "" {
		ms, err := parseTimestamp(l.At)
		if err != nil {
			return err
		}
		timestampMs = &ms
	}

	ctx := context.Background()
	nowMs := int64(0)
	if timestampMs != nil {
		nowMs = *timestampMs
	}
	session, err := cli.Container.OpenSession(ctx, l.Game, nowMs)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	defer session.Close()

	layer, err := session.AttachLayer(ctx, l.Moment, l.Type, timestampMs, l.Value)
	if err != nil {
		return fmt.Errorf("failed to attach layer: %w", err)
	}

	fmt.Printf("Layer %s (%s) attached to moment %s\n", layer.ID, layer.Type, l.Moment)
	return nil
}
