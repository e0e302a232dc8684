package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmroom/internal/domain"
)

func TestBlueprintCreateRejectsInvalid(t *testing.T) {
	store := newTestStore(t)
	svc := NewBlueprintService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, "broken", []domain.ButtonDefinition{
		{Category: "Offense", DurationMode: domain.DurationEventBased, ActivationLinks: []string{"Ghost"}},
	})
	assert.Error(t, err)

	_, err = svc.GetByName(ctx, "broken")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBlueprintUpdateBumpsVersion(t *testing.T) {
	store := newTestStore(t)
	svc := NewBlueprintService(store)
	ctx := context.Background()

	bp, err := svc.Create(ctx, "press", []domain.ButtonDefinition{
		{Category: "Press", DurationMode: domain.DurationEventBased},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, bp.Version)

	updated, err := svc.Update(ctx, bp.ID, []domain.ButtonDefinition{
		{Category: "Press", DurationMode: domain.DurationEventBased},
		{Category: "Trap", DurationMode: domain.DurationEventBased},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	assert.Len(t, updated.Buttons, 2)
}

func TestBlueprintUpdateInvalidKeepsStored(t *testing.T) {
	store := newTestStore(t)
	svc := NewBlueprintService(store)
	ctx := context.Background()

	bp, err := svc.Create(ctx, "press", []domain.ButtonDefinition{
		{Category: "Press", DurationMode: domain.DurationEventBased},
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, bp.ID, []domain.ButtonDefinition{
		{Category: "Press", DurationMode: domain.DurationFixed},
	})
	assert.Error(t, err)

	got, err := svc.GetByName(ctx, "press")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Version)
}

func TestEnsureDefaultIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	svc := NewBlueprintService(store)
	ctx := context.Background()

	first, err := svc.EnsureDefault(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, DefaultBlueprintName, first.Name)
	require.NoError(t, first.Validate())

	second, err := svc.EnsureDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStatsForGame(t *testing.T) {
	store := newTestStore(t)
	game := newTestGame(t, store)
	ctx := context.Background()

	addClosedMoment(t, store, game.ID, "m1", "Offense", 0, 10000)
	addClosedMoment(t, store, game.ID, "m2", "Offense", 1500000, 1504000)
	addClosedMoment(t, store, game.ID, "m3", "Defense", 10000, 25000)
	require.NoError(t, store.AddMoment(ctx, domain.Moment{
		ID: "m4", GameID: game.ID, Category: "Offense", StartMs: 2000000,
	}))

	svc := NewStatsService(store, 12, 4)
	stats, err := svc.ForGame(ctx, game.ID)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "Defense", stats[0].Category)
	assert.Equal(t, 1, stats[0].Count)
	assert.Equal(t, int64(15000), stats[0].TotalDurationMs)

	assert.Equal(t, "Offense", stats[1].Category)
	assert.Equal(t, 3, stats[1].Count)
	assert.Equal(t, 1, stats[1].OpenCount)
	assert.Equal(t, int64(14000), stats[1].TotalDurationMs)
	assert.Equal(t, 1, stats[1].ByQuarter[1])
	assert.Equal(t, 2, stats[1].ByQuarter[3])
}
