package cmd

import (
	"context"
	"fmt"
	"strings"

	"filmroom/internal/domain"
)

// MomentsListCmd lists a game's moments
type MomentsListCmd struct {
	Game     string `arg:"" help:"ID of the game"`
	Open     bool   `help:"Show only open moments"`
	Category string `help:"Show only one category" default:""`
}

// Run executes the list command
func (m *MomentsListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	store := cli.Container.Store()

	var moments []domain.Moment
	var err error
	if m.Open {
		moments, err = store.OpenMoments(ctx, m.Game, m.Category)
	} else {
		moments, err = store.ListMoments(ctx, m.Game)
	}
	if err != nil {
		return fmt.Errorf("failed to list moments: %w", err)
	}

	count := 0
	for _, moment := range moments {
		if m.Category != "" && moment.Category != m.Category {
			continue
		}
		count++
		line := fmt.Sprintf("%s  %-12s %s - %s", moment.ID, moment.Category,
			formatTimestamp(moment.StartMs), formatOptionalEnd(moment.EndMs))
		if len(moment.PlayerIDs) > 0 {
			line += "  [" + strings.Join(moment.PlayerIDs, ", ") + "]"
		}
		if moment.Notes != "" {
			line += "  " + moment.Notes
		}
		fmt.Println(line)
	}

	if count == 0 {
		fmt.Println("No moments.")
	}
	return nil
}
