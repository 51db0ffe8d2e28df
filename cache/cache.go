package cache

import (
	"errors"
	"fmt"

	"libipset/data"
	"libipset/settype"
)

// MaxNameLen bounds cached set names; longer names are truncated to mirror
// the fixed-size name buffers the kernel uses.
const MaxNameLen = 31

var (
	ErrExist    = errors.New("set already in cache")
	ErrNotFound = errors.New("set not found in cache")
)

type set struct {
	name   string
	typ    *settype.SetType
	family data.Family
}

// Cache mirrors the sets known to exist in the kernel, keyed by name. The
// cached type is borrowed from the registry and outlives every entry. Not
// safe for concurrent use; callers serialize externally.
type Cache struct {
	sets []*set
}

func New() *Cache {
	return &Cache{}
}

func truncate(name string) string {
	if len(name) > MaxNameLen {
		return name[:MaxNameLen]
	}
	return name
}

// Add inserts a set at the tail. The whole list is scanned for a duplicate
// name before the insert.
func (c *Cache) Add(name string, typ *settype.SetType, family data.Family) error {
	name = truncate(name)
	for _, s := range c.sets {
		if s.name == name {
			return fmt.Errorf("set %s: %w", name, ErrExist)
		}
	}
	c.sets = append(c.sets, &set{name: name, typ: typ, family: family})
	return nil
}

// Del removes the named set from the cache.
func (c *Cache) Del(name string) error {
	name = truncate(name)
	for i, s := range c.sets {
		if s.name == name {
			c.sets = append(c.sets[:i], c.sets[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("set %s: %w", name, ErrNotFound)
}

// Clear empties the cache unconditionally. Used on a kernel-reported full
// flush and at teardown.
func (c *Cache) Clear() {
	c.sets = nil
}

// Rename renames a cached set in place. No collision check is made against
// an existing entry named to: the kernel is the source of truth and has
// already accepted the rename being mirrored here.
func (c *Cache) Rename(from, to string) error {
	from = truncate(from)
	for _, s := range c.sets {
		if s.name == from {
			s.name = truncate(to)
			return nil
		}
	}
	return fmt.Errorf("set %s: %w", from, ErrNotFound)
}

// Swap exchanges the names of two cached sets. Types and families stay with
// their original entries, only the name labels swap.
func (c *Cache) Swap(from, to string) error {
	from = truncate(from)
	to = truncate(to)
	var a, b *set
	for _, s := range c.sets {
		if a == nil && s.name == from {
			a = s
		}
		if b == nil && s.name == to {
			b = s
		}
		if a != nil && b != nil {
			break
		}
	}
	if a == nil {
		return fmt.Errorf("set %s: %w", from, ErrNotFound)
	}
	if b == nil {
		return fmt.Errorf("set %s: %w", to, ErrNotFound)
	}
	a.name, b.name = to, from
	return nil
}

// Get returns the cached type and family of the named set.
func (c *Cache) Get(name string) (*settype.SetType, data.Family, bool) {
	name = truncate(name)
	for _, s := range c.sets {
		if s.name == name {
			return s.typ, s.family, true
		}
	}
	return nil, data.FamilyUnspec, false
}

func (c *Cache) Len() int {
	return len(c.sets)
}

// Fini releases every entry. The cache may be reused afterwards.
func (c *Cache) Fini() {
	c.Clear()
}
