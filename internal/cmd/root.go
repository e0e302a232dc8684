package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"filmroom/internal/config"
	"filmroom/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Games      GamesCmd      `cmd:"games" help:"Manage games (add, list, del)"`
	Blueprints BlueprintsCmd `cmd:"blueprints" help:"Manage tagging blueprints (list, show, seed)"`
	Tag        TagCmd        `cmd:"tag" help:"Activate a category at a video timestamp"`
	Untag      UntagCmd      `cmd:"untag" help:"Deactivate a category at a video timestamp"`
	Moments    MomentsCmd    `cmd:"moments" help:"Manage tagged moments (list, close, retime)"`
	Layers     LayersCmd     `cmd:"layers" help:"Manage point events on moments (add, list)"`
	Clips      ClipsCmd      `cmd:"clips" help:"Manage clips (add, derive, list, del, players)"`
	Playlists  PlaylistsCmd  `cmd:"playlists" help:"Manage playlists (create, list, show, regenerate, reorder)"`
	Stats      StatsCmd      `cmd:"stats" help:"Show per-category tagging statistics for a game"`
	Console    ConsoleCmd    `cmd:"console" help:"Start the interactive tagging console (default)" default:"1"`
	Serve      ServeCmd      `cmd:"serve" help:"Serve the tagging console over SSH"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("FILMROOM_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("FILMROOM_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so child processes
	// inherit debug settings and append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("FILMROOM_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("FILMROOM_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("FILMROOM_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized so the store's
	// logger never sees a nil logging.Logger
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
