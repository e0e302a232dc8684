package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"filmroom/internal/logging"
	"filmroom/internal/ui"
)

// ConsoleCmd starts the interactive tagging console
type ConsoleCmd struct {
	Game string `arg:"" help:"ID of the game to tag"`
	At   string `help:"Starting clock position (HH:MM:SS, MM:SS or milliseconds)" default:"0"`
}

// Run executes the console command
func (c *ConsoleCmd) Run(cli *CLI) error {
	atMs, err := parseTimestamp(c.At)
	if err != nil {
		return err
	}

	ctx := context.Background()
	game, err := cli.Container.GameService.Get(ctx, c.Game)
	if err != nil {
		return fmt.Errorf("failed to load game: %w", err)
	}

	session, err := cli.Container.OpenSession(ctx, c.Game, atMs)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	defer session.Close()

	logging.Logger.Info("Starting tagging console", "game", game.ID, "at_ms", atMs)

	p := tea.NewProgram(
		ui.NewModel(session, cli.Container.ClipService, game, atMs),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("Console program error", "error", err)
		return fmt.Errorf("error running console: %w", err)
	}

	logging.Logger.Info("Console exited normally")
	return nil
}
