package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"filmroom/internal/adapters/storage"
	"filmroom/internal/domain"
	"filmroom/internal/ports"
)

// newTestStore opens a fresh SQLite store in a per-test temp dir.
func newTestStore(t *testing.T) ports.IntervalStore {
	t.Helper()
	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// newTestGame registers a bare game directly in the store.
func newTestGame(t *testing.T, store ports.IntervalStore) domain.Game {
	t.Helper()
	game := domain.Game{
		ID:        "game-" + t.Name(),
		Name:      t.Name(),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.AddGame(context.Background(), game))
	return game
}

// testButtons is a small blueprint covering the propagation shapes the
// engine exercises: mutual exclusion, activation links and a
// fixed-duration category.
func testButtons() []domain.ButtonDefinition {
	return []domain.ButtonDefinition{
		{Category: "Offense", DurationMode: domain.DurationEventBased, ExclusionSet: []string{"Defense"}, LeadSec: 3, LagSec: 2},
		{Category: "Defense", DurationMode: domain.DurationEventBased, ExclusionSet: []string{"Offense"}},
		{Category: "FastBreak", DurationMode: domain.DurationFixed, FixedDurationSec: 5, ActivationLinks: []string{"Offense"}},
		{Category: "Minutes", DurationMode: domain.DurationEventBased},
	}
}

func newTestSession(t *testing.T, store ports.IntervalStore, gameID string) *TaggingSession {
	t.Helper()
	bp := &domain.Blueprint{ID: "bp", Name: "test", Version: 1, Buttons: testButtons()}
	require.NoError(t, bp.Validate())
	scheduler := NewTimerScheduler()
	t.Cleanup(scheduler.Stop)
	return NewTaggingSession(store, scheduler, bp, gameID, domain.PolicyPerCategory)
}
