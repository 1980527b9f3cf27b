package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
)

// isoDurationPattern accepts the ISO-8601 durations the live boxscore feed
// emits, e.g. "PT36M05.00S".
var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:([\d.]+)S)?$`)

// ParseISODuration converts an ISO-8601 duration into whole seconds.
// Malformed or empty input yields 0.
func ParseISODuration(value string) int {
	m := isoDurationPattern.FindStringSubmatch(value)
	if m == nil || value == "PT" || value == "" {
		return 0
	}
	hours, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	seconds := 0.0
	if m[3] != "" {
		seconds, _ = strconv.ParseFloat(m[3], 64)
	}
	return hours*3600 + minutes*60 + int(seconds)
}

// FormatSeconds renders whole seconds as "M:SS" playing time, minutes
// unpadded and seconds zero-padded.
func FormatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatISODuration is the composition used for player minutes:
// ISO-8601 in, "M:SS" out, with malformed input collapsing to "0:00".
func FormatISODuration(value string) string {
	return FormatSeconds(ParseISODuration(value))
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
