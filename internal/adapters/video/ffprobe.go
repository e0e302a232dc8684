package video

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"filmroom/internal/logging"
	"filmroom/internal/ports"
)

// FFProbe implements ports.VideoMetadata by shelling out to ffprobe.
type FFProbe struct{}

var _ ports.VideoMetadata = (*FFProbe)(nil)

// NewFFProbe creates a new FFProbe adapter.
func NewFFProbe() *FFProbe {
	return &FFProbe{}
}

// DurationMs probes the recording's container duration. A missing
// ffprobe binary reports an unknown duration (0, no error) so clip
// clamping degrades instead of breaking game registration.
func (p *FFProbe) DurationMs(ctx context.Context, path string) (int64, error) {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		logging.Logger.Warn("ffprobe not found in PATH, video duration unknown", "path", path)
		return 0, nil
	}

	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: unexpected output %q: %w", path, string(out), err)
	}

	return int64(seconds * 1000), nil
}
