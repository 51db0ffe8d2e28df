package libipset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"libipset/cache"
	"libipset/data"
	"libipset/kernel"
	"libipset/settype"
)

func TestNewRequiresRegistryAndQuerier(t *testing.T) {
	_, err := New(WithQuerier(&stubQuerier{}))
	assert.Error(t, err)
	_, err = New(WithRegistry(settype.NewRegistry()))
	assert.Error(t, err)
	lib, err := New(WithRegistry(settype.NewRegistry()), WithQuerier(&stubQuerier{}))
	assert.NoError(t, err)
	assert.NotNil(t, lib.Cache()) //default cache
}

func TestLibraryCacheMirror(t *testing.T) {
	r := newFooRegistry(t)
	lib := newTestLibrary(t, r, &stubQuerier{})
	ctx := context.Background()
	typ := r.Types()[0]
	{ //create then rename, mirroring accepted kernel operations
		assert.NoError(t, lib.CacheAdd(ctx, "a", typ, data.FamilyInet))
		assert.NoError(t, lib.CacheAdd(ctx, "b", typ, data.FamilyInet))
		assert.NoError(t, lib.CacheRename(ctx, "a", "c"))
		_, _, ok := lib.Cache().Get("c")
		assert.True(t, ok)
	}
	{ //swap and destroy
		assert.NoError(t, lib.CacheSwap(ctx, "b", "c"))
		assert.NoError(t, lib.CacheDel(ctx, "b"))
		assert.ErrorIs(t, lib.CacheDel(ctx, "b"), cache.ErrNotFound)
	}
	{ //flush everything
		lib.CacheClear(ctx)
		assert.Equal(t, 0, lib.Cache().Len())
	}
	lib.CacheFini()
}

func TestEntryNegotiationAfterCacheFini(t *testing.T) {
	q := &stubQuerier{onHeader: func(d *data.Data) error {
		d.SetTypename("hash:foo")
		d.SetRevision(5)
		d.SetFamily(data.FamilyInet)
		return nil
	}}
	r := newFooRegistry(t)
	lib := newTestLibrary(t, r, q)
	ctx := context.Background()
	assert.NoError(t, lib.CacheAdd(ctx, "myset", r.Types()[0], data.FamilyInet))
	lib.CacheFini()
	d := data.NewData()
	d.SetSetname("myset")
	_, err := lib.TypeGet(ctx, d, kernel.CmdAdd)
	assert.NoError(t, err)
	assert.Equal(t, 1, q.headerCalls) //cache is gone, the kernel is asked
}
