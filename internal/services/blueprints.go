package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"filmroom/internal/domain"
	"filmroom/internal/ports"
)

// BlueprintService manages named button-definition sets. Blueprints are
// validated on every write; a stored blueprint is always resolvable.
type BlueprintService struct {
	store ports.IntervalStore
}

// NewBlueprintService creates a new BlueprintService.
func NewBlueprintService(store ports.IntervalStore) *BlueprintService {
	return &BlueprintService{store: store}
}

// DefaultBlueprintName is the blueprint seeded on first run and used
// when no blueprint is configured.
const DefaultBlueprintName = "default"

// Create validates and persists a blueprint at version 1.
func (s *BlueprintService) Create(ctx context.Context, name string, buttons []domain.ButtonDefinition) (*domain.Blueprint, error) {
	bp := domain.Blueprint{
		ID:        uuid.New().String(),
		Name:      name,
		Version:   1,
		Buttons:   buttons,
		CreatedAt: time.Now().UTC(),
	}
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.AddBlueprint(ctx, bp); err != nil {
		return nil, err
	}
	return &bp, nil
}

// Update replaces a blueprint's buttons and bumps its version.
func (s *BlueprintService) Update(ctx context.Context, id string, buttons []domain.ButtonDefinition) (*domain.Blueprint, error) {
	var updated *domain.Blueprint
	err := s.store.Transact(ctx, func(tx ports.IntervalStore) error {
		bp, err := tx.GetBlueprint(ctx, id)
		if err != nil {
			return err
		}
		bp.Buttons = buttons
		bp.Version++
		if err := bp.Validate(); err != nil {
			return err
		}
		if err := tx.UpdateBlueprint(ctx, *bp); err != nil {
			return err
		}
		updated = bp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetByName returns the named blueprint.
func (s *BlueprintService) GetByName(ctx context.Context, name string) (*domain.Blueprint, error) {
	return s.store.GetBlueprintByName(ctx, name)
}

// List returns all blueprints ordered by name.
func (s *BlueprintService) List(ctx context.Context) ([]domain.Blueprint, error) {
	return s.store.ListBlueprints(ctx)
}

// Delete removes a blueprint. Moments already tagged with its
// categories are untouched.
func (s *BlueprintService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteBlueprint(ctx, id)
}

// EnsureDefault seeds the default blueprint if it does not exist and
// returns it. The sample set mirrors a basic basketball tagging layout:
// Offense and Defense exclude each other, FastBreak is a fixed-duration
// burst that rides on Offense, and Minutes is an independent track.
func (s *BlueprintService) EnsureDefault(ctx context.Context) (*domain.Blueprint, error) {
	existing, err := s.store.GetBlueprintByName(ctx, DefaultBlueprintName)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	return s.Create(ctx, DefaultBlueprintName, []domain.ButtonDefinition{
		{
			Category:     "Offense",
			DisplayName:  "Offense",
			Color:        "2",
			Hotkey:       "o",
			DurationMode: domain.DurationEventBased,
			ExclusionSet: []string{"Defense"},
			LeadSec:      3,
			LagSec:       2,
		},
		{
			Category:     "Defense",
			DisplayName:  "Defense",
			Color:        "1",
			Hotkey:       "d",
			DurationMode: domain.DurationEventBased,
			ExclusionSet: []string{"Offense"},
			LeadSec:      3,
			LagSec:       2,
		},
		{
			Category:         "FastBreak",
			DisplayName:      "Fast Break",
			Color:            "3",
			Hotkey:           "f",
			DurationMode:     domain.DurationFixed,
			FixedDurationSec: 5,
			ActivationLinks:  []string{"Offense"},
			LeadSec:          2,
			LagSec:           2,
		},
		{
			Category:     "Minutes",
			DisplayName:  "Player Minutes",
			Color:        "4",
			Hotkey:       "m",
			DurationMode: domain.DurationEventBased,
		},
	})
}
