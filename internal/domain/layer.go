package domain

import "time"

// Layer is a point-in-time descriptive tag attached to exactly one
// moment. TimestampMs is optional; a nil timestamp marks a momentless
// tag that applies to the whole interval.
type Layer struct {
	ID          string
	MomentID    string
	Type        string
	TimestampMs *int64
	Value       string
	CreatedAt   time.Time
}

// ValidateAgainst checks the layer timestamp against its owning moment.
// A timestamp outside a closed moment's interval is rejected rather than
// clamped; silent clamping would hide tagging mistakes. Open moments
// accept any timestamp.
func (l *Layer) ValidateAgainst(m *Moment) error {
	if l.TimestampMs == nil || m.EndMs == nil {
		return nil
	}
	if *l.TimestampMs < m.StartMs || *l.TimestampMs > *m.EndMs {
		return ErrTimestampOutOfRange
	}
	return nil
}
