package video

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// timestampRegex matches playback-style timestamps: M:SS, MM:SS, H:MM:SS
// or HH:MM:SS, with every component capped at 59.
var timestampRegex = regexp.MustCompile(`^([0-9]|[0-5][0-9])(:[0-5][0-9]){1,2}$`)

// ParseTime converts a user-supplied time value to seconds. The value can be
// a number of seconds ("90", "12.5") or a playback timestamp ("1:30",
// "01:02:03"). Fractional parts of timestamps are truncated.
func ParseTime(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("time value is empty")
	}

	if seconds, err := strconv.ParseFloat(s, 64); err == nil {
		if seconds < 0 {
			return 0, fmt.Errorf("time must not be negative, got %q", s)
		}
		return seconds, nil
	}

	return timestampToSeconds(s)
}

// timestampToSeconds converts a validated timestamp string to seconds.
func timestampToSeconds(timestamp string) (float64, error) {
	trimmed, _, _ := strings.Cut(timestamp, ".")

	if !timestampRegex.MatchString(trimmed) {
		return 0, fmt.Errorf(
			"invalid timestamp %q: allowed formats are 'M:SS', 'MM:SS', 'H:MM:SS', 'HH:MM:SS'",
			timestamp,
		)
	}

	var seconds float64
	parts := strings.Split(trimmed, ":")
	for _, part := range parts {
		n, _ := strconv.Atoi(part)
		seconds = seconds*60 + float64(n)
	}

	return seconds, nil
}

// FormatTimestamp converts seconds to a playback timestamp in H:MM:SS
// format. Fractional seconds are truncated; negative input formats as zero.
func FormatTimestamp(seconds float64) string {
	if seconds <= 0 {
		return "0:00:00"
	}

	total := int(seconds)
	return fmt.Sprintf("%d:%02d:%02d", total/3600, total/60%60, total%60)
}
