package form

import (
	"strconv"
	"strings"
)

// ParseFloat parses raw as a decimal number and returns fallback when the
// field is empty, not a number, or zero. Zero counts as unset because the
// planning form treats a cleared numeric field and "0" identically.
func ParseFloat(raw string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v == 0 {
		return fallback
	}
	return v
}

// ParseInt parses raw as an integer with the same contract as ParseFloat:
// empty, unparsable or zero input yields the fallback.
func ParseInt(raw string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v == 0 {
		return fallback
	}
	return v
}
