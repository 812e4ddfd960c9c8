package pipeline

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration marks a run that was rejected before any identifier
// was produced, typically because the method selector is not recognized.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// InvalidEntry describes a raw name that was rejected during normalization.
// Rejections never abort a run; they are collected and returned alongside the
// result so the caller can surface them.
type InvalidEntry struct {
	// Index is the position of the rejected value in the raw input sequence.
	Index int
	// Raw is the original value as supplied, before trimming.
	Raw string
	// Reason is a short human-readable explanation.
	Reason string
}

func (e InvalidEntry) String() string {
	return fmt.Sprintf("entry %d (%q): %s", e.Index+1, e.Raw, e.Reason)
}
