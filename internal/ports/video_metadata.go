package ports

import "context"

// VideoMetadata probes recording files for playback metadata. The
// engine uses it only to clamp derived clip bounds; a duration of 0
// means unknown and disables the upper clamp.
type VideoMetadata interface {
	DurationMs(ctx context.Context, path string) (int64, error)
}
