package pipeline

import "strings"

// Normalize trims surrounding whitespace from each raw name, preserving
// order. Entries that are empty after trimming are dropped from the output
// and reported as invalid; everything else passes through untouched.
func Normalize(raw []string) ([]string, []InvalidEntry) {
	names := make([]string, 0, len(raw))
	var invalid []InvalidEntry
	for i, value := range raw {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			invalid = append(invalid, InvalidEntry{Index: i, Raw: value, Reason: "empty after trimming"})
			continue
		}
		names = append(names, trimmed)
	}
	return names, invalid
}
