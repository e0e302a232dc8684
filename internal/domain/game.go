package domain

import "time"

// Game represents one recorded game under analysis. It is the owning
// aggregate for moments, clips and playlists; deleting a game cascades
// to everything tagged against it.
type Game struct {
	ID              string
	Name            string
	VideoPath       string
	VideoDurationMs int64 // 0 = unknown (metadata probe unavailable)
	CreatedAt       time.Time
}
