package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"filmroom/internal/domain"
	"filmroom/internal/logging"
	"filmroom/internal/ports"
)

// ClipService creates and edits clips. Player auto-association runs
// once at creation; afterwards the clip's player list is user-owned and
// never silently re-derived.
type ClipService struct {
	store ports.IntervalStore
}

// NewClipService creates a new ClipService.
func NewClipService(store ports.IntervalStore) *ClipService {
	return &ClipService{store: store}
}

// CreateClipParams carries the inputs for an explicit clip creation.
// When PlayerIDs is nil the service derives the list from overlapping
// moments; an empty non-nil slice means "explicitly no players".
type CreateClipParams struct {
	GameID    string
	StartMs   int64
	EndMs     int64
	Title     string
	Notes     string
	Tags      []string
	PlayerIDs []string
}

// CreateClip validates the range, auto-associates players, and persists
// the clip in a single transaction so the association reads the same
// snapshot the clip is written against.
func (s *ClipService) CreateClip(ctx context.Context, params CreateClipParams) (*domain.Clip, error) {
	clip := domain.Clip{
		ID:        uuid.New().String(),
		GameID:    params.GameID,
		StartMs:   params.StartMs,
		EndMs:     params.EndMs,
		Title:     params.Title,
		Notes:     params.Notes,
		Tags:      params.Tags,
		PlayerIDs: params.PlayerIDs,
		CreatedAt: time.Now().UTC(),
	}
	if err := clip.Validate(); err != nil {
		return nil, err
	}

	err := s.store.Transact(ctx, func(tx ports.IntervalStore) error {
		if _, err := tx.GetGame(ctx, params.GameID); err != nil {
			return err
		}
		if clip.PlayerIDs == nil {
			players, err := derivePlayers(ctx, tx, params.GameID, clip.StartMs, clip.EndMs)
			if err != nil {
				return err
			}
			clip.PlayerIDs = players
		}
		return tx.AddClip(ctx, clip)
	})
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Clip created",
		"game", params.GameID,
		"clip", clip.ID,
		"start_ms", clip.StartMs,
		"end_ms", clip.EndMs,
		"players", len(clip.PlayerIDs))

	return &clip, nil
}

// DeriveFromMoment computes a clip draft from a moment's interval
// extended by lead/lag seconds, clamped to the start of the timeline
// and to the game's known video duration (0 = unknown, no upper clamp).
// The draft is not persisted; pass it to CreateClip.
func (s *ClipService) DeriveFromMoment(ctx context.Context, momentID string, leadSec, lagSec int) (*CreateClipParams, error) {
	m, err := s.store.GetMoment(ctx, momentID)
	if err != nil {
		return nil, err
	}
	if m.EndMs == nil {
		return nil, domain.ErrInvalidRange
	}

	game, err := s.store.GetGame(ctx, m.GameID)
	if err != nil {
		return nil, err
	}

	start := m.StartMs - int64(leadSec)*1000
	if start < 0 {
		start = 0
	}
	end := *m.EndMs + int64(lagSec)*1000
	if game.VideoDurationMs > 0 && end > game.VideoDurationMs {
		end = game.VideoDurationMs
	}
	if end <= start {
		return nil, domain.ErrInvalidRange
	}

	return &CreateClipParams{
		GameID:  m.GameID,
		StartMs: start,
		EndMs:   end,
		Title:   m.Category,
		Notes:   m.Notes,
	}, nil
}

// DerivePlayersForRange returns the distinct union of players attached
// to moments overlapping [startMs, endMs). Open-ended moments count as
// extending to "now". Pure read.
func (s *ClipService) DerivePlayersForRange(ctx context.Context, gameID string, startMs, endMs int64) ([]string, error) {
	if endMs <= startMs || startMs < 0 {
		return nil, domain.ErrInvalidRange
	}
	return derivePlayers(ctx, s.store, gameID, startMs, endMs)
}

func derivePlayers(ctx context.Context, store ports.MomentReader, gameID string, startMs, endMs int64) ([]string, error) {
	moments, err := store.MomentsOverlapping(ctx, gameID, startMs, endMs)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var players []string
	for _, m := range moments {
		for _, p := range m.PlayerIDs {
			if !seen[p] {
				seen[p] = true
				players = append(players, p)
			}
		}
	}
	return players, nil
}

// Get returns one clip.
func (s *ClipService) Get(ctx context.Context, clipID string) (*domain.Clip, error) {
	return s.store.GetClip(ctx, clipID)
}

// List returns a game's clips ordered by start.
func (s *ClipService) List(ctx context.Context, gameID string) ([]domain.Clip, error) {
	return s.store.ListClips(ctx, gameID)
}

// UpdateClip persists edits to a clip's range, title, notes or tags.
func (s *ClipService) UpdateClip(ctx context.Context, clip domain.Clip) error {
	if err := clip.Validate(); err != nil {
		return err
	}
	return s.store.UpdateClip(ctx, clip)
}

// AddPlayer adds a player override to a clip.
func (s *ClipService) AddPlayer(ctx context.Context, clipID, playerID string) error {
	return s.store.Transact(ctx, func(tx ports.IntervalStore) error {
		clip, err := tx.GetClip(ctx, clipID)
		if err != nil {
			return err
		}
		for _, p := range clip.PlayerIDs {
			if p == playerID {
				return nil
			}
		}
		clip.PlayerIDs = append(clip.PlayerIDs, playerID)
		return tx.UpdateClip(ctx, *clip)
	})
}

// RemovePlayer removes a player override from a clip.
func (s *ClipService) RemovePlayer(ctx context.Context, clipID, playerID string) error {
	return s.store.Transact(ctx, func(tx ports.IntervalStore) error {
		clip, err := tx.GetClip(ctx, clipID)
		if err != nil {
			return err
		}
		kept := clip.PlayerIDs[:0]
		for _, p := range clip.PlayerIDs {
			if p != playerID {
				kept = append(kept, p)
			}
		}
		clip.PlayerIDs = kept
		return tx.UpdateClip(ctx, *clip)
	})
}

// DeleteClip removes a clip.
func (s *ClipService) DeleteClip(ctx context.Context, clipID string) error {
	return s.store.DeleteClip(ctx, clipID)
}
