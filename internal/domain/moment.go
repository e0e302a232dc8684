package domain

import "time"

// Moment is a category-labeled time interval on a game's timeline.
// A nil EndMs means the moment is still open.
type Moment struct {
	ID        string
	GameID    string
	Category  string
	StartMs   int64
	EndMs     *int64
	Notes     string
	PlayerIDs []string
	CreatedAt time.Time
}

// IsOpen reports whether the moment has not been closed yet.
func (m *Moment) IsOpen() bool {
	return m.EndMs == nil
}

// DurationMs returns end − start for a closed moment, 0 for an open one.
// The duration is always derived, never stored independently.
func (m *Moment) DurationMs() int64 {
	if m.EndMs == nil {
		return 0
	}
	return *m.EndMs - m.StartMs
}

// Close sets the end timestamp. Closing an already-closed moment fails
// with ErrAlreadyClosed; an end before the start fails with
// ErrInvalidRange.
func (m *Moment) Close(atMs int64) error {
	if m.EndMs != nil {
		return ErrAlreadyClosed
	}
	if atMs < m.StartMs {
		return ErrInvalidRange
	}
	m.EndMs = &atMs
	return nil
}

// Retime corrects the start and end of a closed moment. Open moments
// have no end to retime; the closed state is preserved.
func (m *Moment) Retime(newStartMs, newEndMs int64) error {
	if m.EndMs == nil {
		return ErrInvalidRange
	}
	if newEndMs < newStartMs || newStartMs < 0 {
		return ErrInvalidRange
	}
	m.StartMs = newStartMs
	m.EndMs = &newEndMs
	return nil
}

// Overlaps reports whether the moment's active window touches the
// half-open range [startMs, endMs). An open moment is treated as
// extending to "now", so only its start bounds the test.
func (m *Moment) Overlaps(startMs, endMs int64) bool {
	if m.StartMs >= endMs {
		return false
	}
	return m.EndMs == nil || *m.EndMs > startMs
}
