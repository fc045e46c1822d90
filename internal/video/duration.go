// Package video scores candidate videos for topical and pedagogical fit
// and selects the best one for a topic and grade band.
package video

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrBadDuration reports a duration token that is not in the expected
// ISO-8601 style PT#H#M#S form.
var ErrBadDuration = errors.New("unparseable duration")

// Any subset of the hour/minute/second groups may be absent.
var durationRe = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseDuration converts an ISO-8601 style duration token into total
// seconds. Missing groups default to zero: "PT1H30M45S" is 5445,
// "PT4M" is 240.
func ParseDuration(duration string) (int, error) {
	if duration == "" {
		return 0, ErrBadDuration
	}
	m := durationRe.FindStringSubmatch(duration)
	if m == nil {
		return 0, ErrBadDuration
	}
	hours := atoiDefault(m[1])
	minutes := atoiDefault(m[2])
	seconds := atoiDefault(m[3])
	return hours*3600 + minutes*60 + seconds, nil
}

func atoiDefault(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}

// FormatDuration renders seconds as a human-readable duration like
// "1h 30m 45s".
func FormatDuration(seconds int) string {
	minutes, secs := seconds/60, seconds%60
	hours, minutes := minutes/60, minutes%60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, secs)
	}
	return fmt.Sprintf("%ds", secs)
}
