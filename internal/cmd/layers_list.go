package cmd

import (
	"context"
	"fmt"
)

// LayersListCmd lists a moment's point events
type LayersListCmd struct {
	Moment string `arg:"" help:"ID of the moment"`
}

// Run executes the list command
func (l *LayersListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	store := cli.Container.Store()

	if _, err := store.GetMoment(ctx, l.Moment); err != nil {
		return fmt.Errorf("failed to load moment: %w", err)
	}
	layers, err := store.LayersFor(ctx, l.Moment)
	if err != nil {
		return fmt.Errorf("failed to list layers: %w", err)
	}

	if len(layers) == 0 {
		fmt.Println("No layers.")
		return nil
	}

	for _, layer := range layers {
		at := "untimed"
		if layer.TimestampMs != nil {
			at = formatTimestamp(*layer.TimestampMs)
		}
		line := fmt.Sprintf("%s  %-12s %s", layer.ID, layer.Type, at)
		if layer.Value != "" {
			line += "  " + layer.Value
		}
		fmt.Println(line)
	}
	return nil
}
