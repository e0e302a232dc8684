package domain

import "time"

// Playlist is an ordered, named collection of clip IDs. When a filter
// spec is attached the playlist can be regenerated: re-evaluation
// replaces membership wholesale, so clips added by hand outside the
// filter are lost on regenerate. Filters are authoritative.
type Playlist struct {
	ID        string
	GameID    string
	Name      string
	ClipIDs   []string
	Filter    *FilterSpec
	CreatedAt time.Time
	UpdatedAt time.Time
}
