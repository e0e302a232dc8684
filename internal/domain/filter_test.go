package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clipCtx(category string, quarter int, players ...string) ClipContext {
	cc := ClipContext{
		Clip:    Clip{ID: "c1", StartMs: 0, EndMs: 10000, PlayerIDs: players},
		Quarter: quarter,
	}
	if category != "" {
		cc.Moment = &Moment{ID: "m1", Category: category, StartMs: 0}
	}
	return cc
}

func TestFilterSpec_AndAcrossFields(t *testing.T) {
	offenseQ1 := clipCtx("Offense", 1)
	defenseQ1 := clipCtx("Defense", 1)

	spec := FilterSpec{Categories: []string{"Offense"}, Quarters: []int{1}}

	assert.True(t, spec.Matches(offenseQ1))
	assert.False(t, spec.Matches(defenseQ1))
}

func TestFilterSpec_OrWithinField(t *testing.T) {
	q1 := clipCtx("Offense", 1)
	q2 := clipCtx("Defense", 2)
	q3 := clipCtx("Offense", 3)

	spec := FilterSpec{Quarters: []int{1, 2}}

	assert.True(t, spec.Matches(q1))
	assert.True(t, spec.Matches(q2))
	assert.False(t, spec.Matches(q3))
}

func TestFilterSpec_EmptyImposesNoConstraint(t *testing.T) {
	spec := FilterSpec{}

	assert.True(t, spec.IsEmpty())
	assert.True(t, spec.Matches(clipCtx("", 4)))
}

func TestFilterSpec_Players(t *testing.T) {
	spec := FilterSpec{PlayerIDs: []string{"p7", "p23"}}

	assert.True(t, spec.Matches(clipCtx("Offense", 1, "p23")))
	assert.False(t, spec.Matches(clipCtx("Offense", 1, "p11")))
	assert.False(t, spec.Matches(clipCtx("Offense", 1)))
}

func TestFilterSpec_CategoryRequiresMoment(t *testing.T) {
	spec := FilterSpec{Categories: []string{"Offense"}}

	assert.False(t, spec.Matches(clipCtx("", 1)), "a clip with no owning moment cannot match a category filter")
}

func TestFilterSpec_LayerTypes(t *testing.T) {
	cc := clipCtx("Offense", 1)
	cc.Layers = []Layer{{Type: "steal"}, {Type: "assist"}}

	assert.True(t, FilterSpec{LayerTypes: []string{"assist"}}.Matches(cc))
	assert.False(t, FilterSpec{LayerTypes: []string{"block"}}.Matches(cc))
}

func TestFilterSpec_Duration(t *testing.T) {
	cc := clipCtx("Offense", 1) // duration 10000ms

	assert.True(t, FilterSpec{MinDurationMs: 5000}.Matches(cc))
	assert.False(t, FilterSpec{MinDurationMs: 15000}.Matches(cc))
	assert.True(t, FilterSpec{MaxDurationMs: 10000}.Matches(cc))
	assert.False(t, FilterSpec{MaxDurationMs: 9999}.Matches(cc))
}

func TestFilterSpec_Outcomes(t *testing.T) {
	cc := clipCtx("Offense", 1)
	cc.Clip.Tags = []string{"score", "fast-break"}

	assert.True(t, FilterSpec{Outcomes: []string{"score"}}.Matches(cc))
	assert.False(t, FilterSpec{Outcomes: []string{"turnover"}}.Matches(cc))
}

func TestQuarterAt(t *testing.T) {
	tests := []struct {
		name    string
		startMs int64
		want    int
	}{
		{"first minute", 30 * 1000, 1},
		{"just before second period", 12*60*1000 - 1, 1},
		{"second period", 12 * 60 * 1000, 2},
		{"third period", 25 * 60 * 1000, 3},
		{"capped at final period", 500 * 60 * 1000, 4},
		{"negative clamps to start", -5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuarterAt(tt.startMs, 12, 4))
		})
	}
}

func TestBestMoment(t *testing.T) {
	end1 := int64(4000)
	end2 := int64(9000)
	moments := []Moment{
		{ID: "short", StartMs: 3000, EndMs: &end1}, // 1000ms overlap with [3000,10000)
		{ID: "long", StartMs: 5000, EndMs: &end2},  // 4000ms overlap
		{ID: "outside", StartMs: 20000},
	}
	c := Clip{StartMs: 3000, EndMs: 10000}

	best := BestMoment(&c, moments)

	if assert.NotNil(t, best) {
		assert.Equal(t, "long", best.ID)
	}
}

func TestBestMoment_TieBreaksEarliestStart(t *testing.T) {
	end1 := int64(5000)
	end2 := int64(7000)
	moments := []Moment{
		{ID: "later", StartMs: 4000, EndMs: &end2},
		{ID: "earlier", StartMs: 2000, EndMs: &end1},
	}
	// Both overlap [3000, 6000) by 2000ms.
	c := Clip{StartMs: 3000, EndMs: 6000}

	best := BestMoment(&c, moments)

	if assert.NotNil(t, best) {
		assert.Equal(t, "earlier", best.ID)
	}
}

func TestBestMoment_NoOverlap(t *testing.T) {
	c := Clip{StartMs: 0, EndMs: 1000}

	assert.Nil(t, BestMoment(&c, []Moment{{ID: "m", StartMs: 5000}}))
}

func TestBlueprintValidate(t *testing.T) {
	tests := []struct {
		name    string
		bp      *Blueprint
		wantErr bool
	}{
		{"valid", testBlueprint(btn("A"), btn("B")), false},
		{"duplicate category", testBlueprint(btn("A"), btn("A")), true},
		{"dangling link", testBlueprint(ButtonDefinition{Category: "A", ActivationLinks: []string{"Ghost"}}), true},
		{"self link", testBlueprint(ButtonDefinition{Category: "A", ExclusionSet: []string{"A"}}), true},
		{"fixed without duration", testBlueprint(ButtonDefinition{Category: "A", DurationMode: DurationFixed}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bp.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBlueprintResolve(t *testing.T) {
	bp := testBlueprint(btn("Offense"))

	def, err := bp.Resolve("Offense")
	assert.NoError(t, err)
	assert.Equal(t, "Offense", def.Category)

	_, err = bp.Resolve("Defense")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
