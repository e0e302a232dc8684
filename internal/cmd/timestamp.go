package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// parseTimestamp accepts "HH:MM:SS", "MM:SS" or a raw millisecond count
// and returns milliseconds from the start of the video.
func parseTimestamp(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty timestamp")
	}

	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		ms, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp %q: %w", s, err)
		}
		if ms < 0 {
			return 0, fmt.Errorf("invalid timestamp %q: negative", s)
		}
		return ms, nil
	case 2, 3:
		var total int64
		for _, p := range parts {
			v, err := strconv.ParseInt(p, 10, 64)
			if err != nil || v < 0 {
				return 0, fmt.Errorf("invalid timestamp %q", s)
			}
			total = total*60 + v
		}
		return total * 1000, nil
	default:
		return 0, fmt.Errorf("invalid timestamp %q: use HH:MM:SS, MM:SS or milliseconds", s)
	}
}

// formatTimestamp renders milliseconds as H:MM:SS.mmm, dropping the
// hour and millisecond parts when zero.
func formatTimestamp(ms int64) string {
	if ms < 0 {
		return "-"
	}

	totalSec := ms / 1000
	frac := ms % 1000
	h := totalSec / 3600
	m := (totalSec % 3600) / 60
	sec := totalSec % 60

	var b strings.Builder
	if h > 0 {
		fmt.Fprintf(&b, "%d:%02d:%02d", h, m, sec)
	} else {
		fmt.Fprintf(&b, "%d:%02d", m, sec)
	}
	if frac > 0 {
		fmt.Fprintf(&b, ".%03d", frac)
	}
	return b.String()
}

// formatOptionalEnd renders a possibly open end timestamp.
func formatOptionalEnd(endMs *int64) string {
	if endMs == nil {
		return "open"
	}
	return formatTimestamp(*endMs)
}
