package server

import (
	"context"
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"filmroom/internal/adapters/storage"
	"filmroom/internal/domain"
	"filmroom/internal/logging"
	"filmroom/internal/ports"
	"filmroom/internal/services"
	"filmroom/internal/ui"
)

// sessionModel wraps ui.Model to release per-connection resources
type sessionModel struct {
	ui.Model
	sessionID string
	startTime time.Time
	store     ports.IntervalStore
	tagging   *services.TaggingSession
}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		duration := time.Since(s.startTime)
		s.tagging.Close()
		if err := s.store.Close(); err != nil {
			logging.Logger.Error("Failed to close store for SSH session",
				"error", err,
				"session_id", s.sessionID,
				"duration", duration.String())
		}
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", duration.String())
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

// teaHandler creates a tagging console for each SSH session. The game
// is chosen with the SSH command ("ssh film -- <game-id>"); without an
// argument the most recently registered game is used.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	store, err := storage.NewSQLiteStore(s.dbPath)
	if err != nil {
		logging.Logger.Error("Failed to open database for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	ctx := context.Background()

	game, err := s.resolveGame(ctx, store, sess.Command())
	if err != nil {
		store.Close()
		return errorModel{err}, nil
	}

	blueprints := services.NewBlueprintService(store)
	var blueprint *domain.Blueprint
	if s.settings.Blueprint != "" && s.settings.Blueprint != services.DefaultBlueprintName {
		blueprint, err = blueprints.GetByName(ctx, s.settings.Blueprint)
	} else {
		blueprint, err = blueprints.EnsureDefault(ctx)
	}
	if err != nil {
		store.Close()
		return errorModel{fmt.Errorf("failed to load blueprint: %w", err)}, nil
	}

	policy := domain.PolicyPerCategory
	if s.settings.SingleOpen() {
		policy = domain.PolicySingleOpen
	}

	tagging := services.NewTaggingSession(store, services.NewTimerScheduler(), blueprint, game.ID, policy)
	// Timers never outlive the process that armed them, so any fixed
	// duration moment still open here was orphaned. Settle all of them
	// at their scheduled close regardless of clock position.
	if _, err := tagging.SweepOverdue(ctx, math.MaxInt64); err != nil {
		logging.Logger.Warn("Overdue sweep failed", "error", err, "game", game.ID)
	}

	wrappedModel := &sessionModel{
		Model:     ui.NewModel(tagging, services.NewClipService(store), game, 0),
		sessionID: sessionID,
		startTime: time.Now(),
		store:     store,
		tagging:   tagging,
	}

	return wrappedModel, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// resolveGame picks the game named by the SSH command argument, falling
// back to the most recently registered game.
func (s *Server) resolveGame(ctx context.Context, store ports.IntervalStore, args []string) (*domain.Game, error) {
	if len(args) > 0 {
		return store.GetGame(ctx, args[0])
	}

	games, err := store.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("no games registered; run 'filmroom games add' on the host first")
	}
	return &games[len(games)-1], nil
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
