// Package applock serializes subjectid invocations that share one state
// directory. Concurrent runs are independent in memory, but they append to
// the same history database and may target the same export file, so each
// run holds a file lock for its duration.
package applock

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// ErrHeld reports that another subjectid invocation holds the lock.
var ErrHeld = errors.New("another subjectid run is in progress")

// Lock guards a state directory.
type Lock struct {
	path string
	lock *flock.Flock
}

// New builds a lock over the given lock file path.
func New(path string) *Lock {
	return &Lock{path: path, lock: flock.New(path)}
}

// Acquire takes the lock without blocking. It fails with ErrHeld when
// another invocation owns it.
func (l *Lock) Acquire() error {
	ok, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock %s: %w", l.path, err)
	}
	if !ok {
		return fmt.Errorf("%w (lock file %s)", ErrHeld, l.path)
	}
	return nil
}

// Release drops the lock. Safe to call when the lock was never acquired.
func (l *Lock) Release() error {
	return l.lock.Unlock()
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}
