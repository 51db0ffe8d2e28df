package libipset

import (
	"context"
	"fmt"

	"libipset/data"
	"libipset/kernel"
	"libipset/settype"
)

// TypeGet resolves the set type a command applies to. Creating a set
// negotiates a revision range for the session's typename and family; adding,
// deleting or testing an entry resolves the named set through the cache or a
// kernel header query. The resolved type is written back into d (OptType),
// together with the resolved family when the session left it unspecified.
func (l *Library) TypeGet(ctx context.Context, d *data.Data, cmd kernel.Cmd) (*settype.SetType, error) {
	switch cmd {
	case kernel.CmdCreate:
		return l.createTypeGet(ctx, d)
	case kernel.CmdAdd, kernel.CmdDel, kernel.CmdTest:
		return l.adtTypeGet(ctx, d)
	default:
		return nil, fmt.Errorf("cmd %s needs no set type", cmd)
	}
}

// resolveFamily collapses the dual stack marker, a concrete set instance is
// always inet or inet6.
func resolveFamily(f data.Family) data.Family {
	if f == data.FamilyInet46 {
		return data.FamilyInet
	}
	return f
}

func setFamilyAndType(d *data.Data, match *settype.SetType) {
	if d.Family() == data.FamilyUnspec && match.Family != data.FamilyUnspec {
		d.SetFamily(resolveFamily(match.Family))
	}
	d.Set(data.OptType, match)
}

func (l *Library) createTypeGet(ctx context.Context, d *data.Data) (*settype.SetType, error) {
	typename := d.Typename()
	if typename == "" {
		return nil, fmt.Errorf("no typename in session data")
	}
	family := d.Family()

	// Collect the revision range registered for this typename and family.
	// The registry is descending by revision, so the first match carries the
	// highest supported revision and later same-family matches lower ones.
	var match *settype.SetType
	var tmin, tmax uint8
	for _, t := range l.c.registry.Types() {
		if t.KernelCheck() == settype.KernelMismatch {
			continue
		}
		if !t.Match(typename) || !t.MatchFamily(family) {
			continue
		}
		if match == nil {
			match = t
			tmax = t.Revision
		} else if t.Family == match.Family {
			tmin = t.Revision
		}
	}
	if match == nil {
		return nil, fmt.Errorf("settype %s: %w", typename, ErrUnknownType)
	}

	if family == data.FamilyUnspec && match.Family != data.FamilyUnspec {
		family = resolveFamily(match.Family)
		d.SetFamily(family)
	}

	if match.KernelCheck() == settype.KernelOK {
		d.Set(data.OptType, match)
		return match, nil
	}

	if err := l.c.querier.Query(ctx, kernel.CmdType, 0, d); err != nil {
		return nil, err
	}
	kmax, ok := d.Revision()
	if !ok {
		return nil, fmt.Errorf("kernel type reply carries no revision for settype %s", typename)
	}
	kmin := kmax
	if v, ok := d.RevisionMin(); ok {
		kmin = v
	}
	if max(tmin, kmin) > min(tmax, kmax) {
		return nil, &VersionMismatchError{
			TypeName:  typename,
			Family:    family,
			KernelMin: kmin,
			KernelMax: kmax,
			LibMin:    tmin,
			LibMax:    tmax,
		}
	}
	match.SetKernelCheck(settype.KernelOK)
	d.Set(data.OptType, match)
	return match, nil
}

func (l *Library) adtTypeGet(ctx context.Context, d *data.Data) (*settype.SetType, error) {
	setname := d.Setname()
	if setname == "" {
		return nil, fmt.Errorf("no setname in session data")
	}

	// Cache hit needs no kernel round trip.
	if typ, family, ok := l.c.cache.Get(setname); ok {
		if d.Family() == data.FamilyUnspec && family != data.FamilyUnspec {
			d.SetFamily(family)
		}
		d.Set(data.OptType, typ)
		return typ, nil
	}

	if err := l.c.querier.Query(ctx, kernel.CmdHeader, 0, d); err != nil {
		return nil, err
	}
	typename := d.Typename()
	revision, ok := d.Revision()
	if typename == "" || !ok {
		return nil, fmt.Errorf("kernel header reply for set %s carries no type", setname)
	}
	family := d.Family()

	// The kernel told us the exact revision the set runs, so only an exact
	// revision match will do.
	match := l.lookupExact(typename, family, revision)
	if match == nil {
		return nil, &IncompatibleError{
			SetName:  setname,
			TypeName: typename,
			Family:   family,
			Revision: revision,
		}
	}
	match.SetKernelCheck(settype.KernelOK)
	setFamilyAndType(d, match)
	return match, nil
}

func (l *Library) lookupExact(typename string, family data.Family, revision uint8) *settype.SetType {
	for _, t := range l.c.registry.Types() {
		if t.KernelCheck() == settype.KernelMismatch {
			continue
		}
		if t.Match(typename) && t.MatchFamily(family) && t.Revision == revision {
			return t
		}
	}
	return nil
}

// TypeCheck validates a type the kernel reported unilaterally, for example
// while listing sets, against the registry. Unlike TypeGet it performs no
// kernel query and does not mark the match as checked.
func (l *Library) TypeCheck(d *data.Data) (*settype.SetType, error) {
	typename := d.Typename()
	if typename == "" {
		return nil, fmt.Errorf("no typename in session data")
	}
	revision, ok := d.Revision()
	if !ok {
		return nil, fmt.Errorf("no revision in session data")
	}
	family := d.Family()
	match := l.lookupExact(typename, family, revision)
	if match == nil {
		return nil, &IncompatibleError{
			TypeName: typename,
			Family:   family,
			Revision: revision,
		}
	}
	setFamilyAndType(d, match)
	return match, nil
}
