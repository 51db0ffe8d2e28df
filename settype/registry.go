package settype

import (
	"errors"
	"fmt"

	"libipset/data"
)

var ErrExist = errors.New("set type already registered")

// Registry holds every set type compiled into the library. Types live in one
// flat ordering where same-named entries are contiguous and sorted by
// strictly descending revision. Not safe for concurrent use; callers
// serialize externally.
type Registry struct {
	types []*SetType
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a set type, precomputing its per-family max entry sizes and
// inserting it at its sorted position. The registry is left unchanged when a
// type with the same name and revision is already present.
func (r *Registry) Add(t *SetType) error {
	switch t.Family {
	case data.FamilyUnspec, data.FamilyInet:
		t.computeMaxSize(data.FamilyInet)
	case data.FamilyInet6:
		t.computeMaxSize(data.FamilyInet6)
	case data.FamilyInet46:
		t.computeMaxSize(data.FamilyInet)
		t.computeMaxSize(data.FamilyInet6)
	default:
		return fmt.Errorf("settype %s has invalid family %d", t.Name, t.Family)
	}

	insertAt := -1
	seen := false
	for i, cur := range r.types {
		if cur.Name != t.Name {
			if seen {
				// the run ended, t holds its lowest revision so far
				insertAt = i
				break
			}
			continue
		}
		seen = true
		if cur.Revision == t.Revision {
			return fmt.Errorf("settype %s revision %d: %w", t.Name, t.Revision, ErrExist)
		}
		if cur.Revision < t.Revision {
			insertAt = i
			break
		}
	}
	if !seen {
		// first revision of a new name goes to the head of the registry
		insertAt = 0
	} else if insertAt < 0 {
		// run reaches the tail and all revisions are higher
		insertAt = len(r.types)
	}
	r.types = append(r.types, nil)
	copy(r.types[insertAt+1:], r.types[insertAt:])
	r.types[insertAt] = t
	return nil
}

// Resolve returns the canonical name of the first registered type whose name
// or alias matches.
func (r *Registry) Resolve(name string) (string, bool) {
	for _, t := range r.types {
		if t.Match(name) {
			return t.Name, true
		}
	}
	return "", false
}

// Types returns a snapshot of the registered types in registry order. The
// returned types are shared, not copies.
func (r *Registry) Types() []*SetType {
	out := make([]*SetType, len(r.types))
	copy(out, r.types)
	return out
}

func (r *Registry) Len() int {
	return len(r.types)
}
