package body

import (
	"github.com/ficsit-tools/sbp/internal/collision"
	"github.com/ficsit-tools/sbp/internal/hash"
	"github.com/ficsit-tools/sbp/object"
)

// Index is a supplemental, O(1) instance_name → Object lookup over a
// parsed Body. It is not part of the wire format; nothing about parsing or
// serializing a Body requires it. Callers that want to find a single
// object by its placement name (the CLI's inspect subcommand, for
// instance) build one once and query it repeatedly.
type Index struct {
	byName map[string]*object.Object
}

// BuildIndex indexes every object in b by its corresponding header's
// instance name. Two distinct instance names that hash to the same 64-bit
// digest are reported as errs.ErrHashCollision; this has not been observed
// in any real blueprint but is cheap to guard against.
func BuildIndex(b *Body) (*Index, error) {
	idx := &Index{byName: make(map[string]*object.Object, len(b.Headers))}
	tracker := collision.NewTracker()

	n := len(b.Headers)
	if len(b.Objects) < n {
		n = len(b.Objects)
	}

	for i := 0; i < n; i++ {
		name := b.Headers[i].InstanceName

		if err := tracker.Track(name, hash.ID(name)); err != nil {
			return nil, err
		}

		idx.byName[name] = b.Objects[i]
	}

	return idx, nil
}

// Lookup returns the object whose header's instance name is name, and
// whether it was found.
func (idx *Index) Lookup(name string) (*object.Object, bool) {
	obj, ok := idx.byName[name]
	return obj, ok
}

// Len returns the number of indexed objects.
func (idx *Index) Len() int {
	return len(idx.byName)
}
