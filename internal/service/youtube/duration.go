package youtube

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDuration parses an ISO-8601 duration string as returned by the
// videos.list contentDetails part (e.g. "PT15M33S", "P1DT2H") into a
// time.Duration. Week and day designators carry into the total, so
// "P1DT1H" is 25 hours, not 1. Year and month designators have no fixed
// length and are rejected. A decimal fraction (dot or comma) is accepted
// on the final component, per the standard.
func ParseDuration(s string) (time.Duration, error) {
	orig := s
	if len(s) < 2 || s[0] != 'P' {
		return 0, fmt.Errorf("invalid ISO-8601 duration: %q", orig)
	}
	s = s[1:]

	datePart := s
	timePart := ""
	if idx := strings.IndexByte(s, 'T'); idx != -1 {
		datePart, timePart = s[:idx], s[idx+1:]
		if timePart == "" {
			return 0, fmt.Errorf("invalid ISO-8601 duration: %q", orig)
		}
	}
	if datePart == "" && timePart == "" {
		return 0, fmt.Errorf("invalid ISO-8601 duration: %q", orig)
	}

	dateSeconds, err := parseComponents(datePart, map[byte]float64{
		'W': 7 * 24 * 3600,
		'D': 24 * 3600,
	})
	if err != nil {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q: %w", orig, err)
	}

	timeSeconds, err := parseComponents(timePart, map[byte]float64{
		'H': 3600,
		'M': 60,
		'S': 1,
	})
	if err != nil {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q: %w", orig, err)
	}

	return time.Duration((dateSeconds + timeSeconds) * float64(time.Second)), nil
}

// parseComponents walks a sequence of number+designator pairs and sums
// their contribution in seconds.
func parseComponents(part string, multipliers map[byte]float64) (float64, error) {
	var seconds float64

	i := 0
	for i < len(part) {
		j := i
		for j < len(part) && (isDigit(part[j]) || part[j] == '.' || part[j] == ',') {
			j++
		}
		if j == i {
			return 0, fmt.Errorf("expected a number at %q", part[i:])
		}
		if j == len(part) {
			return 0, fmt.Errorf("number %q has no designator", part[i:])
		}

		designator := part[j]
		multiplier, ok := multipliers[designator]
		if !ok {
			return 0, fmt.Errorf("unsupported designator %q", string(designator))
		}

		value, err := strconv.ParseFloat(strings.ReplaceAll(part[i:j], ",", "."), 64)
		if err != nil {
			return 0, fmt.Errorf("parse number %q: %w", part[i:j], err)
		}

		seconds += value * multiplier
		i = j + 1
	}

	return seconds, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
