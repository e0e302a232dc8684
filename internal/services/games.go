package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"filmroom/internal/domain"
	"filmroom/internal/logging"
	"filmroom/internal/ports"
)

// GameService registers and manages games. Registration probes the
// recording for its duration; a failed probe degrades to an unknown
// duration rather than failing the registration.
type GameService struct {
	store ports.IntervalStore
	video ports.VideoMetadata
}

// NewGameService creates a new GameService.
func NewGameService(store ports.IntervalStore, video ports.VideoMetadata) *GameService {
	return &GameService{store: store, video: video}
}

// Register creates a game for the given recording.
func (s *GameService) Register(ctx context.Context, name, videoPath string) (*domain.Game, error) {
	game := domain.Game{
		ID:        uuid.New().String(),
		Name:      name,
		VideoPath: videoPath,
		CreatedAt: time.Now().UTC(),
	}

	if videoPath != "" {
		durationMs, err := s.video.DurationMs(ctx, videoPath)
		if err != nil {
			logging.Logger.Warn("Video duration probe failed", "path", videoPath, "error", err)
		} else {
			game.VideoDurationMs = durationMs
		}
	}

	if err := s.store.AddGame(ctx, game); err != nil {
		return nil, err
	}

	logging.Logger.Info("Game registered", "game", game.ID, "name", name, "duration_ms", game.VideoDurationMs)
	return &game, nil
}

// Get returns one game.
func (s *GameService) Get(ctx context.Context, gameID string) (*domain.Game, error) {
	return s.store.GetGame(ctx, gameID)
}

// List returns all games ordered by creation.
func (s *GameService) List(ctx context.Context) ([]domain.Game, error) {
	return s.store.ListGames(ctx)
}

// Delete removes a game and everything tagged against it.
func (s *GameService) Delete(ctx context.Context, gameID string) error {
	return s.store.DeleteGame(ctx, gameID)
}
