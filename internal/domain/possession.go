package domain

// Possession is a derived interval of exclusive team control, bounded
// by the events that started and ended it (a rebound, a score, a
// turnover). Only the shape is defined: nothing in the engine derives
// possessions from moments or layers yet, and no detection rule should
// be assumed from the triggers stored here.
type Possession struct {
	ID           string
	GameID       string
	StartMs      int64
	EndMs        int64
	Team         string
	Outcome      string
	Points       int
	StartTrigger string
	EndTrigger   string
}

// DurationMs returns the possession length in milliseconds.
func (p Possession) DurationMs() int64 {
	return p.EndMs - p.StartMs
}
