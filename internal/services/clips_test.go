package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmroom/internal/domain"
)

func addClosedMoment(t *testing.T, store interface {
	AddMoment(ctx context.Context, m domain.Moment) error
}, gameID, id, category string, startMs, endMs int64, players ...string) {
	t.Helper()
	end := endMs
	require.NoError(t, store.AddMoment(context.Background(), domain.Moment{
		ID:        id,
		GameID:    gameID,
		Category:  category,
		StartMs:   startMs,
		EndMs:     &end,
		PlayerIDs: players,
		CreatedAt: time.Now().UTC(),
	}))
}

func TestCreateClipDerivesPlayersFromOverlap(t *testing.T) {
	store := newTestStore(t)
	game := newTestGame(t, store)
	svc := NewClipService(store)
	ctx := context.Background()

	addClosedMoment(t, store, game.ID, "m1", "Offense", 0, 4000, "p7", "p12")
	addClosedMoment(t, store, game.ID, "m2", "Defense", 3000, 9000, "p12", "p3")
	addClosedMoment(t, store, game.ID, "m3", "Offense", 20000, 25000, "p99")

	clip, err := svc.CreateClip(ctx, CreateClipParams{
		GameID:  game.ID,
		StartMs: 2000,
		EndMs:   6000,
		Title:   "transition",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"p7", "p12", "p3"}, clip.PlayerIDs)
}

func TestCreateClipExplicitPlayersSkipDerivation(t *testing.T) {
	store := newTestStore(t)
	game := newTestGame(t, store)
	svc := NewClipService(store)
	ctx := context.Background()

	addClosedMoment(t, store, game.ID, "m1", "Offense", 0, 4000, "p7")

	clip, err := svc.CreateClip(ctx, CreateClipParams{
		GameID:    game.ID,
		StartMs:   1000,
		EndMs:     3000,
		PlayerIDs: []string{},
	})
	require.NoError(t, err)
	assert.Empty(t, clip.PlayerIDs)
}

func TestCreateClipInvalidRange(t *testing.T) {
	store := newTestStore(t)
	game := newTestGame(t, store)
	svc := NewClipService(store)

	_, err := svc.CreateClip(context.Background(), CreateClipParams{
		GameID:  game.ID,
		StartMs: 5000,
		EndMs:   5000,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestCreateClipUnknownGame(t *testing.T) {
	store := newTestStore(t)
	svc := NewClipService(store)

	_, err := svc.CreateClip(context.Background(), CreateClipParams{
		GameID:  "nope",
		StartMs: 0,
		EndMs:   1000,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeriveFromMomentClampsToTimeline(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	game := domain.Game{ID: "g1", Name: "semi", VideoDurationMs: 30000, CreatedAt: time.Now().UTC()}
	require.NoError(t, store.AddGame(ctx, game))
	addClosedMoment(t, store, game.ID, "m1", "Offense", 2000, 29000)

	svc := NewClipService(store)
	draft, err := svc.DeriveFromMoment(ctx, "m1", 5, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(0), draft.StartMs)
	assert.Equal(t, int64(30000), draft.EndMs)
	assert.Equal(t, "Offense", draft.Title)
}

func TestDeriveFromMomentUnknownDurationNoUpperClamp(t *testing.T) {
	store := newTestStore(t)
	game := newTestGame(t, store)
	ctx := context.Background()
	addClosedMoment(t, store, game.ID, "m1", "Offense", 10000, 15000)

	svc := NewClipService(store)
	draft, err := svc.DeriveFromMoment(ctx, "m1", 3, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(7000), draft.StartMs)
	assert.Equal(t, int64(17000), draft.EndMs)
}

func TestDeriveFromMomentRejectsOpen(t *testing.T) {
	store := newTestStore(t)
	game := newTestGame(t, store)
	ctx := context.Background()

	require.NoError(t, store.AddMoment(ctx, domain.Moment{
		ID:        "open",
		GameID:    game.ID,
		Category:  "Offense",
		StartMs:   1000,
		CreatedAt: time.Now().UTC(),
	}))

	svc := NewClipService(store)
	_, err := svc.DeriveFromMoment(ctx, "open", 3, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestClipPlayerOverrides(t *testing.T) {
	store := newTestStore(t)
	game := newTestGame(t, store)
	svc := NewClipService(store)
	ctx := context.Background()

	clip, err := svc.CreateClip(ctx, CreateClipParams{
		GameID:    game.ID,
		StartMs:   0,
		EndMs:     1000,
		PlayerIDs: []string{"p1"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.AddPlayer(ctx, clip.ID, "p2"))
	require.NoError(t, svc.AddPlayer(ctx, clip.ID, "p2")) // no duplicate
	require.NoError(t, svc.RemovePlayer(ctx, clip.ID, "p1"))

	got, err := svc.Get(ctx, clip.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, got.PlayerIDs)
}

func TestDerivePlayersForRangeValidation(t *testing.T) {
	store := newTestStore(t)
	game := newTestGame(t, store)
	svc := NewClipService(store)

	_, err := svc.DerivePlayersForRange(context.Background(), game.ID, 5000, 5000)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}
