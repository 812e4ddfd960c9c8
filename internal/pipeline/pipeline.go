package pipeline

// Result is the complete outcome of one pipeline run.
type Result struct {
	// Records is the ordered name-to-identifier table.
	Records []Record `json:"records"`
	// Rejected lists the input entries dropped during normalization.
	Rejected []InvalidEntry `json:"rejected,omitempty"`
	// Duplicates is parallel to Records; true marks a repeat of an earlier
	// name. Duplicates are flagged for review, never removed.
	Duplicates []bool `json:"duplicates"`
}

// DuplicateCount returns how many records repeat an earlier name.
func (r Result) DuplicateCount() int {
	count := 0
	for _, flagged := range r.Duplicates {
		if flagged {
			count++
		}
	}
	return count
}

// Run executes the full pipeline over a batch of raw names: normalization,
// duplicate flagging, then identifier assignment. The method selector is
// validated before any work happens so an invalid configuration never yields
// a partial table. Every input entry is accounted for: it either becomes a
// record or a rejection.
func Run(raw []string, method Method) (Result, error) {
	if _, err := ParseMethod(string(method)); err != nil {
		return Result{}, err
	}

	names, rejected := Normalize(raw)
	flags := FlagDuplicates(names)
	records, err := Assign(names, method)
	if err != nil {
		return Result{}, err
	}

	return Result{Records: records, Rejected: rejected, Duplicates: flags}, nil
}
