package cmd

import (
	"context"
	"fmt"
)

// BlueprintsListCmd lists blueprints
type BlueprintsListCmd struct{}

// Run executes the list command
func (b *BlueprintsListCmd) Run(cli *CLI) error {
	blueprints, err := cli.Container.BlueprintService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list blueprints: %w", err)
	}

	if len(blueprints) == 0 {
		fmt.Println("No blueprints. Use 'filmroom blueprints seed' to create the default one.")
		return nil
	}

	for _, bp := range blueprints {
		fmt.Printf("%s  v%d  %d buttons\n", bp.Name, bp.Version, len(bp.Buttons))
	}
	return nil
}
