package score

import (
	"fmt"
	"strconv"
	"strings"
)

// FramerateGroups lists sets of frame rates that are treated as identical.
type FramerateGroups [][]float64

// DefaultFramerateGroups treats the film rates 23.976, 23.98, and 24 as one.
var DefaultFramerateGroups = FramerateGroups{{23.976, 23.98, 24.0}}

// FramerateEqual reports whether two frame rates are equal under the default
// groups.
func FramerateEqual(source, check float64) bool {
	return DefaultFramerateGroups.Equal(source, check)
}

// Equal reports whether source and check are identical or share a group.
func (g FramerateGroups) Equal(source, check float64) bool {
	if source == check {
		return true
	}
	for _, group := range g {
		if containsRate(group, source) && containsRate(group, check) {
			return true
		}
	}
	return false
}

func containsRate(group []float64, rate float64) bool {
	for _, value := range group {
		if value == rate {
			return true
		}
	}
	return false
}

// ParseFramerate coerces a textual frame rate such as "24" or "23.976".
func ParseFramerate(value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	rate, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("parse framerate %q: %w", value, err)
	}
	return rate, nil
}
