package libipset

import (
	"context"
	"fmt"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"libipset/cache"
	"libipset/data"
	"libipset/settype"
)

// Library binds a type registry, a set cache and a kernel querier into the
// resolution engine of the ipset userspace library. Not safe for concurrent
// use; callers serialize externally.
type Library struct {
	c *config
}

func New(opts ...Option) (*Library, error) {
	c := applyOpts(opts...)
	if c.registry == nil {
		return nil, fmt.Errorf("no type registry found")
	}
	if c.querier == nil {
		return nil, fmt.Errorf("no kernel querier found")
	}
	if c.cache == nil {
		c.cache = cache.New()
	}
	return &Library{c: c}, nil
}

func (l *Library) Registry() *settype.Registry {
	return l.c.registry
}

func (l *Library) Cache() *cache.Cache {
	return l.c.cache
}

// ResolveTypename returns the canonical name for a typename or alias.
func (l *Library) ResolveTypename(name string) (string, bool) {
	return l.c.registry.Resolve(name)
}

func (l *Library) recordOp(ctx context.Context, op string, setname string, typ *settype.SetType, family data.Family, detail string) {
	if l.c.journal == nil {
		return
	}
	typename := ""
	if typ != nil {
		typename = typ.Name
	}
	if err := l.c.journal.AddOpRecord(ctx, op, setname, typename, family.String(), detail); err != nil {
		logutil.GetLogger(ctx).Error("record set op failed",
			zap.String("op", op), zap.String("set", setname), zap.Error(err))
	}
}

// CacheAdd mirrors a kernel-accepted set creation into the cache.
func (l *Library) CacheAdd(ctx context.Context, name string, typ *settype.SetType, family data.Family) error {
	if err := l.c.cache.Add(name, typ, family); err != nil {
		return err
	}
	l.recordOp(ctx, "create", name, typ, family, "")
	return nil
}

// CacheDel mirrors a kernel-accepted set destroy into the cache.
func (l *Library) CacheDel(ctx context.Context, name string) error {
	typ, family, _ := l.c.cache.Get(name)
	if err := l.c.cache.Del(name); err != nil {
		return err
	}
	l.recordOp(ctx, "destroy", name, typ, family, "")
	return nil
}

// CacheClear empties the cache, mirroring a kernel-side flush of every set.
func (l *Library) CacheClear(ctx context.Context) {
	l.c.cache.Clear()
	l.recordOp(ctx, "clear", "", nil, data.FamilyUnspec, "")
}

// CacheRename mirrors a kernel-accepted rename into the cache.
func (l *Library) CacheRename(ctx context.Context, from, to string) error {
	typ, family, _ := l.c.cache.Get(from)
	if err := l.c.cache.Rename(from, to); err != nil {
		return err
	}
	l.recordOp(ctx, "rename", from, typ, family, to)
	return nil
}

// CacheSwap mirrors a kernel-accepted swap into the cache.
func (l *Library) CacheSwap(ctx context.Context, from, to string) error {
	typ, family, _ := l.c.cache.Get(from)
	if err := l.c.cache.Swap(from, to); err != nil {
		return err
	}
	l.recordOp(ctx, "swap", from, typ, family, to)
	return nil
}

// CacheFini releases the cache at teardown.
func (l *Library) CacheFini() {
	l.c.cache.Fini()
}
