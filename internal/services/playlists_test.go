package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmroom/internal/domain"
)

// seedFilm builds a small corpus: three closed moments with players and
// three clips riding on them.
func seedFilm(t *testing.T, store interface {
	AddMoment(ctx context.Context, m domain.Moment) error
}, clips *ClipService, gameID string) (offClip, defClip, lateClip *domain.Clip) {
	t.Helper()
	ctx := context.Background()

	addClosedMoment(t, store, gameID, "m-off", "Offense", 0, 10000, "p7")
	addClosedMoment(t, store, gameID, "m-def", "Defense", 10000, 20000, "p3")
	// Third period under 12 minute quarters.
	addClosedMoment(t, store, gameID, "m-late", "Offense", 1500000, 1510000, "p7", "p9")

	var err error
	offClip, err = clips.CreateClip(ctx, CreateClipParams{GameID: gameID, StartMs: 1000, EndMs: 8000, Tags: []string{"score"}})
	require.NoError(t, err)
	defClip, err = clips.CreateClip(ctx, CreateClipParams{GameID: gameID, StartMs: 11000, EndMs: 18000, Tags: []string{"stop"}})
	require.NoError(t, err)
	lateClip, err = clips.CreateClip(ctx, CreateClipParams{GameID: gameID, StartMs: 1501000, EndMs: 1508000, Tags: []string{"score"}})
	require.NoError(t, err)
	return offClip, defClip, lateClip
}

func TestEvaluateFiltersByPlayerAndCategory(t *testing.T) {
	store := newTestStore(t)
	game := newTestGame(t, store)
	clips := NewClipService(store)
	playlists := NewPlaylistService(store, 12, 4)
	ctx := context.Background()

	offClip, _, lateClip := seedFilm(t, store, clips, game.ID)

	got, err := playlists.Evaluate(ctx, game.ID, domain.FilterSpec{
		PlayerIDs:  []string{"p7"},
		Categories: []string{"Offense"},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, offClip.ID, got[0].Clip.ID)
	assert.Equal(t, lateClip.ID, got[1].Clip.ID)
}

func TestEvaluateQuarterFilter(t *testing.T) {
	store := newTestStore(t)
	game := newTestGame(t, store)
	clips := NewClipService(store)
	playlists := NewPlaylistService(store, 12, 4)
	ctx := context.Background()

	_, _, lateClip := seedFilm(t, store, clips, game.ID)

	got, err := playlists.Evaluate(ctx, game.ID, domain.FilterSpec{Quarters: []int{3}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, lateClip.ID, got[0].Clip.ID)
	assert.Equal(t, 3, got[0].Quarter)
}

func TestEvaluateAnnotatesBestMoment(t *testing.T) {
	store := newTestStore(t)
	game := newTestGame(t, store)
	clips := NewClipService(store)
	playlists := NewPlaylistService(store, 12, 4)
	ctx := context.Background()

	seedFilm(t, store, clips, game.ID)

	got, err := playlists.Evaluate(ctx, game.ID, domain.FilterSpec{Categories: []string{"Defense"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Moment)
	assert.Equal(t, "m-def", got[0].Moment.ID)
}

func TestCreateFromFilterAndRegenerate(t *testing.T) {
	store := newTestStore(t)
	game := newTestGame(t, store)
	clips := NewClipService(store)
	playlists := NewPlaylistService(store, 12, 4)
	ctx := context.Background()

	offClip, defClip, lateClip := seedFilm(t, store, clips, game.ID)

	playlist, err := playlists.CreateFromFilter(ctx, game.ID, "scores", domain.FilterSpec{Outcomes: []string{"score"}})
	require.NoError(t, err)
	assert.Equal(t, []string{offClip.ID, lateClip.ID}, playlist.ClipIDs)

	// A manual addition survives until regenerate, which reapplies the
	// stored filter wholesale.
	require.NoError(t, playlists.AddClip(ctx, playlist.ID, defClip.ID))
	got, err := playlists.Get(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Len(t, got.ClipIDs, 3)

	regenerated, err := playlists.Regenerate(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{offClip.ID, lateClip.ID}, regenerated.ClipIDs)
}

func TestRegeneratePicksUpNewClips(t *testing.T) {
	store := newTestStore(t)
	game := newTestGame(t, store)
	clips := NewClipService(store)
	playlists := NewPlaylistService(store, 12, 4)
	ctx := context.Background()

	offClip, _, lateClip := seedFilm(t, store, clips, game.ID)

	playlist, err := playlists.CreateFromFilter(ctx, game.ID, "scores", domain.FilterSpec{Outcomes: []string{"score"}})
	require.NoError(t, err)
	require.Len(t, playlist.ClipIDs, 2)

	extra, err := clips.CreateClip(ctx, CreateClipParams{GameID: game.ID, StartMs: 3000, EndMs: 6000, Tags: []string{"score"}})
	require.NoError(t, err)

	regenerated, err := playlists.Regenerate(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{offClip.ID, extra.ID, lateClip.ID}, regenerated.ClipIDs)
}

func TestRegenerateManualPlaylistFails(t *testing.T) {
	store := newTestStore(t)
	game := newTestGame(t, store)
	clips := NewClipService(store)
	playlists := NewPlaylistService(store, 12, 4)
	ctx := context.Background()

	offClip, _, _ := seedFilm(t, store, clips, game.ID)

	playlist, err := playlists.CreateManual(ctx, game.ID, "picks", []string{offClip.ID})
	require.NoError(t, err)

	_, err = playlists.Regenerate(ctx, playlist.ID)
	assert.Error(t, err)
}

func TestRegenerateAllSkipsManual(t *testing.T) {
	store := newTestStore(t)
	game := newTestGame(t, store)
	clips := NewClipService(store)
	playlists := NewPlaylistService(store, 12, 4)
	ctx := context.Background()

	offClip, _, _ := seedFilm(t, store, clips, game.ID)

	_, err := playlists.CreateFromFilter(ctx, game.ID, "scores", domain.FilterSpec{Outcomes: []string{"score"}})
	require.NoError(t, err)
	_, err = playlists.CreateFromFilter(ctx, game.ID, "stops", domain.FilterSpec{Outcomes: []string{"stop"}})
	require.NoError(t, err)
	_, err = playlists.CreateManual(ctx, game.ID, "picks", []string{offClip.ID})
	require.NoError(t, err)

	n, err := playlists.RegenerateAll(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestReorderValidatesPermutation(t *testing.T) {
	store := newTestStore(t)
	game := newTestGame(t, store)
	clips := NewClipService(store)
	playlists := NewPlaylistService(store, 12, 4)
	ctx := context.Background()

	offClip, defClip, lateClip := seedFilm(t, store, clips, game.ID)

	playlist, err := playlists.CreateManual(ctx, game.ID, "all", []string{offClip.ID, defClip.ID, lateClip.ID})
	require.NoError(t, err)

	err = playlists.Reorder(ctx, playlist.ID, []string{offClip.ID, defClip.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	err = playlists.Reorder(ctx, playlist.ID, []string{offClip.ID, defClip.ID, "stranger"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	want := []string{lateClip.ID, offClip.ID, defClip.ID}
	require.NoError(t, playlists.Reorder(ctx, playlist.ID, want))

	got, err := playlists.Get(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got.ClipIDs)
}
