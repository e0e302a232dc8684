package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBlueprint(buttons ...ButtonDefinition) *Blueprint {
	return &Blueprint{ID: "bp1", Name: "test", Version: 1, Buttons: buttons}
}

func btn(category string) ButtonDefinition {
	return ButtonDefinition{Category: category, DisplayName: category, DurationMode: DurationEventBased}
}

func TestPlanActivate_SimpleOpen(t *testing.T) {
	p := Planner{Blueprint: testBlueprint(btn("Offense")), Policy: PolicyPerCategory}

	actions, err := p.PlanActivate("Offense", 1000, nil)

	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, ActionOpen, actions[0].Kind)
	assert.Equal(t, "Offense", actions[0].Category)
	assert.Equal(t, int64(1000), actions[0].AtMs)
}

func TestPlanActivate_IdempotentReactivation(t *testing.T) {
	p := Planner{Blueprint: testBlueprint(btn("Offense")), Policy: PolicyPerCategory}
	open := []Moment{{ID: "m1", Category: "Offense", StartMs: 1000}}

	actions, err := p.PlanActivate("Offense", 2000, open)

	require.NoError(t, err)
	assert.Empty(t, actions, "re-activating an open category must be a no-op")
}

func TestPlanActivate_MutualExclusion(t *testing.T) {
	defense := btn("Defense")
	defense.ExclusionSet = []string{"Offense"}
	p := Planner{Blueprint: testBlueprint(btn("Offense"), defense), Policy: PolicyPerCategory}
	open := []Moment{{ID: "m1", Category: "Offense", StartMs: 1000}}

	actions, err := p.PlanActivate("Defense", 5000, open)

	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, Action{Kind: ActionClose, Category: "Offense", MomentID: "m1", AtMs: 5000}, actions[0])
	assert.Equal(t, Action{Kind: ActionOpen, Category: "Defense", AtMs: 5000}, actions[1])
}

func TestPlanActivate_DeactivationLinksSkipAlreadyScheduled(t *testing.T) {
	// Offense appears in both the exclusion set and the deactivation
	// links; its open moment must be closed exactly once.
	press := btn("Press")
	press.ExclusionSet = []string{"Offense"}
	press.DeactivationLinks = []string{"Offense", "HalfCourt"}
	p := Planner{Blueprint: testBlueprint(btn("Offense"), btn("HalfCourt"), press), Policy: PolicyPerCategory}
	open := []Moment{
		{ID: "m1", Category: "Offense", StartMs: 0},
		{ID: "m2", Category: "HalfCourt", StartMs: 100},
	}

	actions, err := p.PlanActivate("Press", 9000, open)

	require.NoError(t, err)
	require.Len(t, actions, 3)
	assert.Equal(t, "m1", actions[0].MomentID)
	assert.Equal(t, "m2", actions[1].MomentID)
	assert.Equal(t, ActionOpen, actions[2].Kind)
}

func TestPlanActivate_ActivationLinksOpenRecursively(t *testing.T) {
	offense := btn("Offense")
	offense.ActivationLinks = []string{"ShotClock"}
	p := Planner{Blueprint: testBlueprint(offense, btn("ShotClock")), Policy: PolicyPerCategory}

	actions, err := p.PlanActivate("Offense", 1000, nil)

	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, "Offense", actions[0].Category)
	assert.Equal(t, "ShotClock", actions[1].Category)
	assert.Equal(t, ActionOpen, actions[1].Kind)
}

func TestPlanActivate_CycleTerminates(t *testing.T) {
	a := btn("A")
	a.ActivationLinks = []string{"B"}
	b := btn("B")
	b.ActivationLinks = []string{"A"}
	p := Planner{Blueprint: testBlueprint(a, b), Policy: PolicyPerCategory}

	actions, err := p.PlanActivate("A", 1000, nil)

	require.NoError(t, err)
	opens := map[string]int{}
	for _, act := range actions {
		require.Equal(t, ActionOpen, act.Kind)
		opens[act.Category]++
	}
	assert.Equal(t, map[string]int{"A": 1, "B": 1}, opens, "each category opens at most once per top-level activation")
}

func TestPlanActivate_LinkedCategoryAlreadyOpenIsSkipped(t *testing.T) {
	offense := btn("Offense")
	offense.ActivationLinks = []string{"ShotClock"}
	p := Planner{Blueprint: testBlueprint(offense, btn("ShotClock")), Policy: PolicyPerCategory}
	open := []Moment{{ID: "m9", Category: "ShotClock", StartMs: 500}}

	actions, err := p.PlanActivate("Offense", 1000, open)

	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "Offense", actions[0].Category)
}

func TestPlanActivate_SingleOpenPolicyClosesEverything(t *testing.T) {
	p := Planner{Blueprint: testBlueprint(btn("Offense"), btn("Defense"), btn("Minutes")), Policy: PolicySingleOpen}
	open := []Moment{
		{ID: "m1", Category: "Defense", StartMs: 0},
		{ID: "m2", Category: "Minutes", StartMs: 100},
	}

	actions, err := p.PlanActivate("Offense", 7000, open)

	require.NoError(t, err)
	require.Len(t, actions, 3)
	closed := map[string]bool{}
	for _, act := range actions[:2] {
		assert.Equal(t, ActionClose, act.Kind)
		closed[act.MomentID] = true
	}
	assert.True(t, closed["m1"] && closed["m2"])
	assert.Equal(t, ActionOpen, actions[2].Kind)
}

func TestPlanActivate_UnknownCategory(t *testing.T) {
	p := Planner{Blueprint: testBlueprint(btn("Offense")), Policy: PolicyPerCategory}

	_, err := p.PlanActivate("Nonsense", 1000, nil)

	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestPlanDeactivate_ClosesAllOpenOfCategory(t *testing.T) {
	p := Planner{Blueprint: testBlueprint(btn("Offense")), Policy: PolicyPerCategory}
	open := []Moment{
		{ID: "m1", Category: "Offense", StartMs: 0},
		{ID: "m2", Category: "Offense", StartMs: 100},
	}

	actions, err := p.PlanDeactivate("Offense", 4000, open)

	require.NoError(t, err)
	require.Len(t, actions, 2)
	for _, act := range actions {
		assert.Equal(t, ActionClose, act.Kind)
		assert.Equal(t, int64(4000), act.AtMs)
	}
}

func TestPlanDeactivate_NothingOpenIsNoop(t *testing.T) {
	p := Planner{Blueprint: testBlueprint(btn("Offense")), Policy: PolicyPerCategory}

	actions, err := p.PlanDeactivate("Offense", 4000, nil)

	require.NoError(t, err)
	assert.Empty(t, actions)
}

func TestPlanDeactivate_LinkedClosesWithCycleGuard(t *testing.T) {
	a := btn("A")
	a.DeactivationLinks = []string{"B"}
	b := btn("B")
	b.DeactivationLinks = []string{"A"}
	p := Planner{Blueprint: testBlueprint(a, b), Policy: PolicyPerCategory}
	open := []Moment{
		{ID: "m1", Category: "A", StartMs: 0},
		{ID: "m2", Category: "B", StartMs: 100},
	}

	actions, err := p.PlanDeactivate("A", 4000, open)

	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, "m1", actions[0].MomentID)
	assert.Equal(t, "m2", actions[1].MomentID)
}
