// Package collision guards the instance-name index (body.Index) against
// two distinct object instance names hashing to the same 64-bit digest.
package collision

import (
	"github.com/ficsit-tools/sbp/errs"
)

// Tracker records which instance-name hashes have been seen while an index
// is being built, and distinguishes a genuine hash collision (two different
// names, same hash) from a duplicate registration (the same name twice).
type Tracker struct {
	names map[uint64]string
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names: make(map[uint64]string),
	}
}

// Track registers name under hash. It returns errs.ErrHashCollision if a
// different name already occupies hash, or errs.ErrDuplicateInstance if the
// same name was already registered.
func (t *Tracker) Track(name string, hash uint64) error {
	if existing, ok := t.names[hash]; ok {
		if existing != name {
			return errs.ErrHashCollision
		}

		return errs.ErrDuplicateInstance
	}

	t.names[hash] = name

	return nil
}

// Count returns the number of distinct instance names tracked.
func (t *Tracker) Count() int {
	return len(t.names)
}

// Reset clears all tracked names, allowing the Tracker to be reused.
func (t *Tracker) Reset() {
	for k := range t.names {
		delete(t.names, k)
	}
}
