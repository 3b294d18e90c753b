package medications

import (
	"strings"

	"openwindows-service/internal/pkg/constvars"
)

// TimeOfDayFromFrequency buckets a free-text dosing frequency into the
// schedule groups the portal renders. Matching is case-insensitive and the
// first matching bucket wins; as-needed is checked first so "as needed in the
// evening" stays as-needed. Unrecognized text also falls back to as-needed.
func TimeOfDayFromFrequency(frequency string) string {
	lowered := strings.ToLower(frequency)

	switch {
	case strings.Contains(lowered, "as needed"),
		strings.Contains(lowered, "as-needed"),
		strings.Contains(lowered, "prn"):
		return constvars.TimeOfDayAsNeeded
	case strings.Contains(lowered, "morning"),
		strings.Contains(lowered, "breakfast"):
		return constvars.TimeOfDayMorning
	case strings.Contains(lowered, "afternoon"),
		strings.Contains(lowered, "midday"),
		strings.Contains(lowered, "noon"),
		strings.Contains(lowered, "lunch"):
		return constvars.TimeOfDayAfternoon
	case strings.Contains(lowered, "evening"),
		strings.Contains(lowered, "bedtime"),
		strings.Contains(lowered, "night"),
		strings.Contains(lowered, "dinner"):
		return constvars.TimeOfDayEvening
	default:
		return constvars.TimeOfDayAsNeeded
	}
}
