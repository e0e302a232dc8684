package cmd

import (
	"context"

	adapterstorage "filmroom/internal/adapters/storage"
	adaptervideo "filmroom/internal/adapters/video"
	"filmroom/internal/config"
	"filmroom/internal/domain"
	"filmroom/internal/ports"
	"filmroom/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	GameService      *services.GameService
	ClipService      *services.ClipService
	PlaylistService  *services.PlaylistService
	BlueprintService *services.BlueprintService
	StatsService     *services.StatsService

	// Engine configuration derived from settings
	Policy          domain.OpenPolicy
	BlueprintName   string
	PeriodLengthMin int
	PeriodCount     int

	// Internal - for cleanup only
	store ports.IntervalStore
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	store, err := adapterstorage.NewSQLiteStore(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = &config.Settings{}
	}

	policy := domain.PolicyPerCategory
	if settings.SingleOpen() {
		policy = domain.PolicySingleOpen
	}

	blueprintName := settings.Blueprint
	if blueprintName == "" {
		blueprintName = services.DefaultBlueprintName
	}

	periodLength := settings.PeriodLength()
	periodCount := settings.Periods()

	return &Container{
		GameService:      services.NewGameService(store, adaptervideo.NewFFProbe()),
		ClipService:      services.NewClipService(store),
		PlaylistService:  services.NewPlaylistService(store, periodLength, periodCount),
		BlueprintService: services.NewBlueprintService(store),
		StatsService:     services.NewStatsService(store, periodLength, periodCount),
		Policy:           policy,
		BlueprintName:    blueprintName,
		PeriodLengthMin:  periodLength,
		PeriodCount:      periodCount,
		store:            store,
	}, nil
}

// Store exposes the shared store for session construction.
func (c *Container) Store() ports.IntervalStore {
	return c.store
}

// OpenSession builds a tagging session for gameID using the configured
// blueprint, seeding the default blueprint on first use. The session
// first settles fixed-duration moments left open by a previous process.
func (c *Container) OpenSession(ctx context.Context, gameID string, nowMs int64) (*services.TaggingSession, error) {
	if _, err := c.GameService.Get(ctx, gameID); err != nil {
		return nil, err
	}

	var blueprint *domain.Blueprint
	var err error
	if c.BlueprintName == services.DefaultBlueprintName {
		blueprint, err = c.BlueprintService.EnsureDefault(ctx)
	} else {
		blueprint, err = c.BlueprintService.GetByName(ctx, c.BlueprintName)
	}
	if err != nil {
		return nil, err
	}

	session := services.NewTaggingSession(c.store, services.NewTimerScheduler(), blueprint, gameID, c.Policy)
	if _, err := session.SweepOverdue(ctx, nowMs); err != nil {
		session.Close()
		return nil, err
	}
	return session, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
