package cmd

import (
	"context"
	"fmt"
	"strings"

	"filmroom/internal/domain"
)

// BlueprintsShowCmd shows one blueprint's button definitions
type BlueprintsShowCmd struct {
	Name string `arg:"" help:"Name of the blueprint to show"`
}

// Run executes the show command
func (b *BlueprintsShowCmd) Run(cli *CLI) error {
	bp, err := cli.Container.BlueprintService.GetByName(context.Background(), b.Name)
	if err != nil {
		return fmt.Errorf("failed to load blueprint: %w", err)
	}

	fmt.Printf("Blueprint %s (v%d)\n\n", bp.Name, bp.Version)
	for _, btn := range bp.Buttons {
		fmt.Printf("[%s] %s\n", btn.Hotkey, btn.Category)
		if btn.DurationMode == domain.DurationFixed {
			fmt.Printf("    duration: fixed %ds\n", btn.FixedDurationSec)
		} else {
			fmt.Printf("    duration: event-based\n")
		}
		if len(btn.ExclusionSet) > 0 {
			fmt.Printf("    excludes: %s\n", strings.Join(btn.ExclusionSet, ", "))
		}
		if len(btn.ActivationLinks) > 0 {
			fmt.Printf("    activates: %s\n", strings.Join(btn.ActivationLinks, ", "))
		}
		if len(btn.DeactivationLinks) > 0 {
			fmt.Printf("    deactivates: %s\n", strings.Join(btn.DeactivationLinks, ", "))
		}
		if btn.LeadSec > 0 || btn.LagSec > 0 {
			fmt.Printf("    clip padding: lead %ds, lag %ds\n", btn.LeadSec, btn.LagSec)
		}
	}
	return nil
}
