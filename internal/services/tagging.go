package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"filmroom/internal/domain"
	"filmroom/internal/logging"
	"filmroom/internal/ports"
)

// TaggingSession is the per-game interval engine. One session serves
// one analyst tagging one game; it serializes writes for its game, so
// explicit user actions and timer-driven deferred closes can never
// interleave mid-propagation. Construct one per game, never share
// across games.
type TaggingSession struct {
	store     ports.IntervalStore
	scheduler ports.CloseScheduler
	blueprint *domain.Blueprint
	planner   domain.Planner
	gameID    string

	mu sync.Mutex
}

// NewTaggingSession creates a session for gameID using the given
// blueprint and policy. The caller owns the scheduler's lifetime; pass
// a fresh TimerScheduler for interactive sessions.
func NewTaggingSession(
	store ports.IntervalStore,
	scheduler ports.CloseScheduler,
	blueprint *domain.Blueprint,
	gameID string,
	policy domain.OpenPolicy,
) *TaggingSession {
	return &TaggingSession{
		store:     store,
		scheduler: scheduler,
		blueprint: blueprint,
		planner:   domain.Planner{Blueprint: blueprint, Policy: policy},
		gameID:    gameID,
	}
}

// GameID returns the game this session is bound to.
func (s *TaggingSession) GameID() string { return s.gameID }

// Blueprint returns the immutable blueprint the session propagates with.
func (s *TaggingSession) Blueprint() *domain.Blueprint { return s.blueprint }

// ActivationResult reports what a single user action changed.
type ActivationResult struct {
	Opened []domain.Moment
	Closed []domain.Moment
}

// Activate opens category at atMs, applying the full trigger
// propagation (mutual exclusion, deactivation links, activation links)
// in one store transaction. Activating an already-open category is a
// no-op.
func (s *TaggingSession) Activate(ctx context.Context, category string, atMs int64) (*ActivationResult, error) {
	if atMs < 0 {
		return nil, domain.ErrInvalidRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.applyPlanned(ctx, func(open []domain.Moment) ([]domain.Action, error) {
		return s.planner.PlanActivate(category, atMs, open)
	})
	if err != nil {
		return nil, err
	}

	s.armFixedCloses(result.Opened)
	for _, m := range result.Closed {
		s.scheduler.Cancel(m.ID)
	}

	logging.Logger.Info("Category activated",
		"game", s.gameID,
		"category", category,
		"at_ms", atMs,
		"opened", len(result.Opened),
		"closed", len(result.Closed))

	return result, nil
}

// Deactivate closes every open moment of category at atMs, dragging
// deactivation-linked categories with it. Deactivating a category with
// nothing open is a no-op.
func (s *TaggingSession) Deactivate(ctx context.Context, category string, atMs int64) (*ActivationResult, error) {
	if atMs < 0 {
		return nil, domain.ErrInvalidRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.applyPlanned(ctx, func(open []domain.Moment) ([]domain.Action, error) {
		return s.planner.PlanDeactivate(category, atMs, open)
	})
	if err != nil {
		return nil, err
	}

	for _, m := range result.Closed {
		s.scheduler.Cancel(m.ID)
	}

	logging.Logger.Info("Category deactivated",
		"game", s.gameID,
		"category", category,
		"at_ms", atMs,
		"closed", len(result.Closed))

	return result, nil
}

// applyPlanned reads the open set, plans, and applies the plan, all
// inside one transaction so partial propagation is never observable.
// Must be called with s.mu held.
func (s *TaggingSession) applyPlanned(ctx context.Context, plan func([]domain.Moment) ([]domain.Action, error)) (*ActivationResult, error) {
	result := &ActivationResult{}

	err := s.store.Transact(ctx, func(tx ports.IntervalStore) error {
		open, err := tx.OpenMoments(ctx, s.gameID, "")
		if err != nil {
			return err
		}

		actions, err := plan(open)
		if err != nil {
			return err
		}

		byID := make(map[string]domain.Moment, len(open))
		for _, m := range open {
			byID[m.ID] = m
		}

		for _, action := range actions {
			switch action.Kind {
			case domain.ActionClose:
				m, ok := byID[action.MomentID]
				if !ok {
					return fmt.Errorf("close target %s: %w", action.MomentID, domain.ErrNotFound)
				}
				if err := m.Close(action.AtMs); err != nil {
					return err
				}
				if err := tx.UpdateMoment(ctx, m); err != nil {
					return err
				}
				result.Closed = append(result.Closed, m)
			case domain.ActionOpen:
				m := domain.Moment{
					ID:        uuid.New().String(),
					GameID:    s.gameID,
					Category:  action.Category,
					StartMs:   action.AtMs,
					CreatedAt: time.Now().UTC(),
				}
				if err := tx.AddMoment(ctx, m); err != nil {
					return err
				}
				result.Opened = append(result.Opened, m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// armFixedCloses schedules the deferred auto-close for every just-opened
// fixed-duration moment. Timers are keyed by moment ID so a timer from a
// previous instance of the same category can never touch a new moment.
func (s *TaggingSession) armFixedCloses(opened []domain.Moment) {
	for _, m := range opened {
		btn, err := s.blueprint.Resolve(m.Category)
		if err != nil || btn.DurationMode != domain.DurationFixed {
			continue
		}

		momentID := m.ID
		closeAt := m.StartMs + int64(btn.FixedDurationSec)*1000
		s.scheduler.Schedule(momentID, time.Duration(btn.FixedDurationSec)*time.Second, func() {
			if err := s.CloseMoment(context.Background(), momentID, closeAt); err != nil &&
				!errors.Is(err, domain.ErrAlreadyClosed) && !errors.Is(err, domain.ErrNotFound) {
				logging.Logger.Error("Deferred close failed", "moment", momentID, "error", err)
			}
		})
	}
}

// SweepOverdue closes fixed-duration moments whose auto-close time has
// already passed. Interactive sessions arm live timers instead; the
// sweep covers moments left open by a previous process.
func (s *TaggingSession) SweepOverdue(ctx context.Context, nowMs int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	swept := 0
	err := s.store.Transact(ctx, func(tx ports.IntervalStore) error {
		open, err := tx.OpenMoments(ctx, s.gameID, "")
		if err != nil {
			return err
		}
		for _, m := range open {
			btn, err := s.blueprint.Resolve(m.Category)
			if err != nil || btn.DurationMode != domain.DurationFixed {
				continue
			}
			closeAt := m.StartMs + int64(btn.FixedDurationSec)*1000
			if closeAt > nowMs {
				continue
			}
			if err := m.Close(closeAt); err != nil {
				return err
			}
			if err := tx.UpdateMoment(ctx, m); err != nil {
				return err
			}
			swept++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return swept, nil
}

// CloseMoment explicitly closes one moment at atMs and cancels its
// deferred close, if any.
func (s *TaggingSession) CloseMoment(ctx context.Context, momentID string, atMs int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.Transact(ctx, func(tx ports.IntervalStore) error {
		m, err := tx.GetMoment(ctx, momentID)
		if err != nil {
			return err
		}
		if err := m.Close(atMs); err != nil {
			return err
		}
		return tx.UpdateMoment(ctx, *m)
	})
	if err != nil {
		return err
	}

	s.scheduler.Cancel(momentID)
	return nil
}

// RetimeMoment corrects a closed moment's interval.
func (s *TaggingSession) RetimeMoment(ctx context.Context, momentID string, newStartMs, newEndMs int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Transact(ctx, func(tx ports.IntervalStore) error {
		m, err := tx.GetMoment(ctx, momentID)
		if err != nil {
			return err
		}
		if err := m.Retime(newStartMs, newEndMs); err != nil {
			return err
		}
		return tx.UpdateMoment(ctx, *m)
	})
}

// UpdateMomentNotes replaces a moment's notes. Allowed on open and
// closed moments alike.
func (s *TaggingSession) UpdateMomentNotes(ctx context.Context, momentID, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Transact(ctx, func(tx ports.IntervalStore) error {
		m, err := tx.GetMoment(ctx, momentID)
		if err != nil {
			return err
		}
		m.Notes = notes
		return tx.UpdateMoment(ctx, *m)
	})
}

// SetMomentPlayers replaces the players attached to a moment.
func (s *TaggingSession) SetMomentPlayers(ctx context.Context, momentID string, playerIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Transact(ctx, func(tx ports.IntervalStore) error {
		m, err := tx.GetMoment(ctx, momentID)
		if err != nil {
			return err
		}
		m.PlayerIDs = playerIDs
		return tx.UpdateMoment(ctx, *m)
	})
}

// AttachLayer attaches a point-event to a moment. Timestamps outside a
// closed moment's interval are rejected, not clamped.
func (s *TaggingSession) AttachLayer(ctx context.Context, momentID, layerType string, timestampMs *int64, value string) (*domain.Layer, error) {
	layer := domain.Layer{
		ID:          uuid.New().String(),
		MomentID:    momentID,
		Type:        layerType,
		TimestampMs: timestampMs,
		Value:       value,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.Transact(ctx, func(tx ports.IntervalStore) error {
		m, err := tx.GetMoment(ctx, momentID)
		if err != nil {
			return err
		}
		if err := layer.ValidateAgainst(m); err != nil {
			return err
		}
		return tx.AddLayer(ctx, layer)
	})
	if err != nil {
		return nil, err
	}
	return &layer, nil
}

// Layers returns a moment's layers ordered by creation.
func (s *TaggingSession) Layers(ctx context.Context, momentID string) ([]domain.Layer, error) {
	if _, err := s.store.GetMoment(ctx, momentID); err != nil {
		return nil, err
	}
	return s.store.LayersFor(ctx, momentID)
}

// OpenMoments returns the session game's currently open moments.
func (s *TaggingSession) OpenMoments(ctx context.Context) ([]domain.Moment, error) {
	return s.store.OpenMoments(ctx, s.gameID, "")
}

// Moments returns all moments for the session game ordered by start.
func (s *TaggingSession) Moments(ctx context.Context) ([]domain.Moment, error) {
	return s.store.ListMoments(ctx, s.gameID)
}

// Close stops the session's deferred-close timers. Open moments stay
// open in the store; the next session's SweepOverdue settles them.
func (s *TaggingSession) Close() {
	s.scheduler.Stop()
}
