package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"filmroom/internal/domain"
	"filmroom/internal/logging"
	"filmroom/internal/ports"
)

// PlaylistService evaluates filter specs against a game's clip corpus
// and manages playlists. Evaluation is a pure read; regeneration
// replaces a playlist's membership wholesale from its stored filter, so
// manually added clips are lost on regenerate.
type PlaylistService struct {
	store           ports.IntervalStore
	periodLengthMin int
	periodCount     int
}

// NewPlaylistService creates a new PlaylistService. Period structure
// drives the quarter heuristic used in filtering.
func NewPlaylistService(store ports.IntervalStore, periodLengthMin, periodCount int) *PlaylistService {
	return &PlaylistService{
		store:           store,
		periodLengthMin: periodLengthMin,
		periodCount:     periodCount,
	}
}

// Evaluate returns the game's clips matching spec, ordered by start,
// each annotated with its best-matching moment, the moment's layers
// restricted to the clip window, and an approximate quarter number.
func (s *PlaylistService) Evaluate(ctx context.Context, gameID string, spec domain.FilterSpec) ([]domain.ClipContext, error) {
	clips, err := s.store.ListClips(ctx, gameID)
	if err != nil {
		return nil, err
	}

	var results []domain.ClipContext
	for _, clip := range clips {
		cc, err := s.annotate(ctx, clip)
		if err != nil {
			return nil, err
		}
		if spec.Matches(*cc) {
			results = append(results, *cc)
		}
	}
	return results, nil
}

// Annotate builds the display/filter context for a single clip.
func (s *PlaylistService) Annotate(ctx context.Context, clipID string) (*domain.ClipContext, error) {
	clip, err := s.store.GetClip(ctx, clipID)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, *clip)
}

func (s *PlaylistService) annotate(ctx context.Context, clip domain.Clip) (*domain.ClipContext, error) {
	moments, err := s.store.MomentsOverlapping(ctx, clip.GameID, clip.StartMs, clip.EndMs)
	if err != nil {
		return nil, err
	}

	cc := &domain.ClipContext{
		Clip: clip,
		// The quarter number is a fixed-length-period estimate, not
		// ground truth; callers must present it as approximate.
		Quarter: domain.QuarterAt(clip.StartMs, s.periodLengthMin, s.periodCount),
		Moment:  domain.BestMoment(&clip, moments),
	}

	if cc.Moment != nil {
		layers, err := s.store.LayersFor(ctx, cc.Moment.ID)
		if err != nil {
			return nil, err
		}
		for _, l := range layers {
			if l.TimestampMs != nil && (*l.TimestampMs < clip.StartMs || *l.TimestampMs >= clip.EndMs) {
				continue
			}
			cc.Layers = append(cc.Layers, l)
		}
	}
	return cc, nil
}

// CreateFromFilter evaluates spec and persists the result as a named
// playlist carrying the spec for later regeneration.
func (s *PlaylistService) CreateFromFilter(ctx context.Context, gameID, name string, spec domain.FilterSpec) (*domain.Playlist, error) {
	contexts, err := s.Evaluate(ctx, gameID, spec)
	if err != nil {
		return nil, err
	}

	playlist := domain.Playlist{
		ID:        uuid.New().String(),
		GameID:    gameID,
		Name:      name,
		ClipIDs:   clipIDs(contexts),
		Filter:    &spec,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.AddPlaylist(ctx, playlist); err != nil {
		return nil, err
	}

	logging.Logger.Info("Playlist created from filter",
		"game", gameID, "playlist", playlist.ID, "clips", len(playlist.ClipIDs))
	return &playlist, nil
}

// CreateManual persists a playlist with an explicit clip list and no
// stored filter. It can never be regenerated.
func (s *PlaylistService) CreateManual(ctx context.Context, gameID, name string, ids []string) (*domain.Playlist, error) {
	playlist := domain.Playlist{
		ID:        uuid.New().String(),
		GameID:    gameID,
		Name:      name,
		ClipIDs:   ids,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.AddPlaylist(ctx, playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}

// Regenerate re-runs a playlist's stored filter and replaces its clip
// list wholesale. Clips added by hand outside the filter are lost;
// filters are authoritative on regenerate. Playlists without a stored
// filter cannot be regenerated.
func (s *PlaylistService) Regenerate(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	playlist, err := s.store.GetPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.Filter == nil {
		return nil, fmt.Errorf("playlist %s has no stored filter", playlistID)
	}

	contexts, err := s.Evaluate(ctx, playlist.GameID, *playlist.Filter)
	if err != nil {
		return nil, err
	}

	playlist.ClipIDs = clipIDs(contexts)
	if err := s.store.UpdatePlaylist(ctx, *playlist); err != nil {
		return nil, err
	}

	logging.Logger.Info("Playlist regenerated",
		"playlist", playlistID, "clips", len(playlist.ClipIDs))
	return playlist, nil
}

// RegenerateAll regenerates every filter-backed playlist of a game.
// Playlists without filters are skipped. Evaluations run concurrently
// with bounded parallelism; the first failure aborts the rest.
func (s *PlaylistService) RegenerateAll(ctx context.Context, gameID string) (int, error) {
	playlists, err := s.store.ListPlaylists(ctx, gameID)
	if err != nil {
		return 0, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	regenerated := 0
	for _, p := range playlists {
		if p.Filter == nil {
			continue
		}
		regenerated++
		playlistID := p.ID
		g.Go(func() error {
			_, err := s.Regenerate(ctx, playlistID)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return regenerated, nil
}

// Reorder replaces a playlist's clip order. The new order must be a
// permutation of the current membership; reordering is a pure list
// edit, never a membership change.
func (s *PlaylistService) Reorder(ctx context.Context, playlistID string, order []string) error {
	return s.store.Transact(ctx, func(tx ports.IntervalStore) error {
		playlist, err := tx.GetPlaylist(ctx, playlistID)
		if err != nil {
			return err
		}
		if len(order) != len(playlist.ClipIDs) {
			return fmt.Errorf("order has %d clips, playlist has %d: %w", len(order), len(playlist.ClipIDs), domain.ErrInvalidRange)
		}
		current := make(map[string]bool, len(playlist.ClipIDs))
		for _, id := range playlist.ClipIDs {
			current[id] = true
		}
		for _, id := range order {
			if !current[id] {
				return fmt.Errorf("clip %s not in playlist: %w", id, domain.ErrNotFound)
			}
		}
		playlist.ClipIDs = order
		return tx.UpdatePlaylist(ctx, *playlist)
	})
}

// AddClip appends a clip to a playlist by hand. The addition survives
// until the next regenerate.
func (s *PlaylistService) AddClip(ctx context.Context, playlistID, clipID string) error {
	return s.store.Transact(ctx, func(tx ports.IntervalStore) error {
		if _, err := tx.GetClip(ctx, clipID); err != nil {
			return err
		}
		playlist, err := tx.GetPlaylist(ctx, playlistID)
		if err != nil {
			return err
		}
		for _, id := range playlist.ClipIDs {
			if id == clipID {
				return nil
			}
		}
		playlist.ClipIDs = append(playlist.ClipIDs, clipID)
		return tx.UpdatePlaylist(ctx, *playlist)
	})
}

// RemoveClip removes a clip from a playlist's membership.
func (s *PlaylistService) RemoveClip(ctx context.Context, playlistID, clipID string) error {
	return s.store.Transact(ctx, func(tx ports.IntervalStore) error {
		playlist, err := tx.GetPlaylist(ctx, playlistID)
		if err != nil {
			return err
		}
		kept := playlist.ClipIDs[:0]
		for _, id := range playlist.ClipIDs {
			if id != clipID {
				kept = append(kept, id)
			}
		}
		playlist.ClipIDs = kept
		return tx.UpdatePlaylist(ctx, *playlist)
	})
}

// Get returns one playlist.
func (s *PlaylistService) Get(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	return s.store.GetPlaylist(ctx, playlistID)
}

// List returns a game's playlists.
func (s *PlaylistService) List(ctx context.Context, gameID string) ([]domain.Playlist, error) {
	return s.store.ListPlaylists(ctx, gameID)
}

// Delete removes a playlist. Clips are untouched.
func (s *PlaylistService) Delete(ctx context.Context, playlistID string) error {
	return s.store.DeletePlaylist(ctx, playlistID)
}

func clipIDs(contexts []domain.ClipContext) []string {
	ids := make([]string, 0, len(contexts))
	for _, cc := range contexts {
		ids = append(ids, cc.Clip.ID)
	}
	return ids
}
