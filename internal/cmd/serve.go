package cmd

import (
	"fmt"

	"filmroom/internal/config"
	"filmroom/internal/server"
)

// ServeCmd serves the tagging console over SSH
type ServeCmd struct {
	Host string `help:"Host to bind to" default:"0.0.0.0"`
	Port string `help:"Port to listen on" default:"2233"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}

	// The SSH server opens its own store per connection; release the
	// container's handle so WAL checkpointing isn't held up by an idle
	// connection.
	if cli.Container != nil {
		cli.Container.Close()
	}

	srv, err := server.NewServer(s.Host, s.Port, config.GetDBPath(), settings)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}
	return srv.Start()
}
