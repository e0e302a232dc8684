package domain

import "time"

// Clip is an independently named time range over a game's timeline. It
// need not coincide with any single moment. PlayerIDs are derived once
// at creation from overlapping moments and are user-owned afterwards;
// the engine never silently reconciles them.
type Clip struct {
	ID        string
	GameID    string
	StartMs   int64
	EndMs     int64
	Title     string
	Notes     string
	Tags      []string
	PlayerIDs []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate enforces the clip interval invariant end > start.
func (c *Clip) Validate() error {
	if c.StartMs < 0 || c.EndMs <= c.StartMs {
		return ErrInvalidRange
	}
	return nil
}

// ClipContext annotates a clip with derived display/filter context:
// the single best-matching owning moment (most overlap, ties broken by
// earliest start), its layers restricted to the clip's window, and an
// approximate quarter number. The quarter is a fixed-length-period
// heuristic, not ground truth.
type ClipContext struct {
	Clip    Clip
	Moment  *Moment
	Layers  []Layer
	Quarter int
}

// BestMoment picks the moment with the largest overlap with the clip's
// window; ties break toward the earliest start. Returns nil when no
// moment overlaps.
func BestMoment(c *Clip, moments []Moment) *Moment {
	var best *Moment
	var bestOverlap int64
	for i := range moments {
		m := &moments[i]
		if !m.Overlaps(c.StartMs, c.EndMs) {
			continue
		}
		end := c.EndMs
		if m.EndMs != nil && *m.EndMs < end {
			end = *m.EndMs
		}
		start := c.StartMs
		if m.StartMs > start {
			start = m.StartMs
		}
		overlap := end - start
		if best == nil || overlap > bestOverlap || (overlap == bestOverlap && m.StartMs < best.StartMs) {
			best = m
			bestOverlap = overlap
		}
	}
	return best
}
