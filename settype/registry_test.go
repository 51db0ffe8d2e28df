package settype

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"libipset/data"
)

func newType(name string, alias string, family data.Family, revision uint8) *SetType {
	t := &SetType{
		Name:     name,
		Family:   family,
		Revision: revision,
	}
	if len(alias) > 0 {
		t.Aliases = []string{alias}
	}
	t.Full[SlotAdd] = data.Flag(data.OptIP) | data.Flag(data.OptTimeout)
	return t
}

func TestRegistryDuplicateRevision(t *testing.T) {
	r := NewRegistry()
	err := r.Add(newType("hash:foo", "foohash", data.FamilyInet, 2))
	assert.NoError(t, err)
	before := r.Len()
	err = r.Add(newType("hash:foo", "foohash", data.FamilyInet, 2))
	assert.ErrorIs(t, err, ErrExist)
	assert.Equal(t, before, r.Len())
}

func TestRegistryDescendingOrder(t *testing.T) {
	r := NewRegistry()
	{ //register out of order, interleaved with another name
		assert.NoError(t, r.Add(newType("hash:foo", "", data.FamilyInet, 1)))
		assert.NoError(t, r.Add(newType("hash:bar", "", data.FamilyInet, 0)))
		assert.NoError(t, r.Add(newType("hash:foo", "", data.FamilyInet, 3)))
		assert.NoError(t, r.Add(newType("hash:foo", "", data.FamilyInet, 2)))
		assert.NoError(t, r.Add(newType("hash:bar", "", data.FamilyInet, 5)))
	}
	{ //same-named entries must be contiguous and strictly descending
		var fooRevs []uint8
		runs := make(map[string]int)
		last := ""
		for _, typ := range r.Types() {
			if typ.Name != last {
				runs[typ.Name]++
				last = typ.Name
			}
			if typ.Name == "hash:foo" {
				fooRevs = append(fooRevs, typ.Revision)
			}
		}
		assert.Equal(t, []uint8{3, 2, 1}, fooRevs)
		assert.Equal(t, 1, runs["hash:foo"])
		assert.Equal(t, 1, runs["hash:bar"])
	}
}

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry()
	assert.NoError(t, r.Add(newType("hash:foo", "foohash", data.FamilyInet, 0)))
	name, ok := r.Resolve("foohash")
	assert.True(t, ok)
	assert.Equal(t, "hash:foo", name)
	name, ok = r.Resolve("hash:foo")
	assert.True(t, ok)
	assert.Equal(t, "hash:foo", name)
	_, ok = r.Resolve("hash:nope")
	assert.False(t, ok)
}

func TestRegistryMaxSize(t *testing.T) {
	r := NewRegistry()
	typ := newType("hash:foo", "", data.FamilyInet46, 0)
	assert.NoError(t, r.Add(typ))
	inet := typ.MaxSize(data.FamilyInet)
	inet6 := typ.MaxSize(data.FamilyInet6)
	assert.Greater(t, inet, 0)
	assert.Greater(t, inet6, inet) //inet6 addresses encode larger
}

func TestBuiltinRegistry(t *testing.T) {
	r, err := NewBuiltinRegistry()
	assert.NoError(t, err)
	name, ok := r.Resolve("iphash")
	assert.True(t, ok)
	assert.Equal(t, "hash:ip", name)
	name, ok = r.Resolve("setlist")
	assert.True(t, ok)
	assert.Equal(t, "list:set", name)
}
