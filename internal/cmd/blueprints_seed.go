package cmd

import (
	"context"
	"fmt"
)

// BlueprintsSeedCmd creates the default blueprint if it doesn't exist
type BlueprintsSeedCmd struct{}

// Run executes the seed command
func (b *BlueprintsSeedCmd) Run(cli *CLI) error {
	bp, err := cli.Container.BlueprintService.EnsureDefault(context.Background())
	if err != nil {
		return fmt.Errorf("failed to seed default blueprint: %w", err)
	}

	fmt.Printf("Blueprint '%s' ready (v%d, %d buttons)\n", bp.Name, bp.Version, len(bp.Buttons))
	return nil
}
