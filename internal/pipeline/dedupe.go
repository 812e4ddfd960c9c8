package pipeline

// FlagDuplicates returns a parallel slice of flags for the given normalized
// names. A flag is true when an identical name appeared earlier in the
// sequence; first occurrences are never flagged. Matching is byte-exact and
// case-sensitive because normalization has already fixed the comparison form.
func FlagDuplicates(names []string) []bool {
	flags := make([]bool, len(names))
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		if _, ok := seen[name]; ok {
			flags[i] = true
			continue
		}
		seen[name] = struct{}{}
	}
	return flags
}
