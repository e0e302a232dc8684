package domain

// FilterSpec narrows a candidate clip set. Fields combine with logical
// AND; values within a single field combine with logical OR. Absent or
// empty fields impose no constraint.
type FilterSpec struct {
	PlayerIDs     []string `json:"player_ids,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	LayerTypes    []string `json:"layer_types,omitempty"`
	Quarters      []int    `json:"quarters,omitempty"`
	Outcomes      []string `json:"outcomes,omitempty"`
	MinDurationMs int64    `json:"min_duration_ms,omitempty"`
	MaxDurationMs int64    `json:"max_duration_ms,omitempty"`
}

// IsEmpty reports whether the spec imposes no constraint at all.
func (f FilterSpec) IsEmpty() bool {
	return len(f.PlayerIDs) == 0 && len(f.Categories) == 0 &&
		len(f.LayerTypes) == 0 && len(f.Quarters) == 0 &&
		len(f.Outcomes) == 0 && f.MinDurationMs == 0 && f.MaxDurationMs == 0
}

// Matches evaluates the spec against an annotated clip.
func (f FilterSpec) Matches(cc ClipContext) bool {
	if len(f.PlayerIDs) > 0 && !anyIn(f.PlayerIDs, cc.Clip.PlayerIDs) {
		return false
	}
	if len(f.Categories) > 0 {
		if cc.Moment == nil || !contains(f.Categories, cc.Moment.Category) {
			return false
		}
	}
	if len(f.LayerTypes) > 0 {
		found := false
		for _, l := range cc.Layers {
			if contains(f.LayerTypes, l.Type) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(f.Quarters) > 0 {
		found := false
		for _, q := range f.Quarters {
			if q == cc.Quarter {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(f.Outcomes) > 0 && !anyIn(f.Outcomes, cc.Clip.Tags) {
		return false
	}
	dur := cc.Clip.EndMs - cc.Clip.StartMs
	if f.MinDurationMs > 0 && dur < f.MinDurationMs {
		return false
	}
	if f.MaxDurationMs > 0 && dur > f.MaxDurationMs {
		return false
	}
	return true
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// anyIn reports whether any wanted value appears in values.
func anyIn(wanted, values []string) bool {
	for _, w := range wanted {
		if contains(values, w) {
			return true
		}
	}
	return false
}
