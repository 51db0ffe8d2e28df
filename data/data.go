package data

// Family classifies the address family a set type or a session applies to.
type Family uint8

const (
	FamilyUnspec Family = iota
	FamilyInet
	FamilyInet6
	// FamilyInet46 marks set types serving both inet and inet6 sessions.
	FamilyInet46
)

func (f Family) String() string {
	switch f {
	case FamilyInet:
		return "inet"
	case FamilyInet6:
		return "inet6"
	case FamilyInet46:
		return "inet46"
	default:
		return "unspec"
	}
}

func FamilyFromString(s string) (Family, bool) {
	switch s {
	case "inet":
		return FamilyInet, true
	case "inet6":
		return FamilyInet6, true
	case "inet46":
		return FamilyInet46, true
	case "unspec", "":
		return FamilyUnspec, true
	}
	return FamilyUnspec, false
}

// Opt enumerates the keys of the session working data store.
type Opt int

const (
	OptNone Opt = iota
	OptTypename
	OptSetname
	OptFamily
	OptRevision
	OptRevisionMin
	OptType

	// entry attributes
	OptIP
	OptIPTo
	OptCIDR
	OptPort
	OptPortTo
	OptTimeout
	OptEther
	OptName
	OptNameRef

	OptMax
)

// Flag returns the bit representing opt in attribute flag bitsets.
func Flag(o Opt) uint64 {
	return 1 << uint(o)
}

// AdtFlags masks the attributes which may appear in an add/del/test entry.
var AdtFlags = Flag(OptIP) | Flag(OptIPTo) | Flag(OptCIDR) |
	Flag(OptPort) | Flag(OptPortTo) | Flag(OptTimeout) |
	Flag(OptEther) | Flag(OptName) | Flag(OptNameRef)

// Data is the per-command working store carrying user specified options and
// resolved results. Keys are Opt values; absent keys return the zero value.
type Data struct {
	items map[Opt]interface{}
}

func NewData() *Data {
	return &Data{items: make(map[Opt]interface{})}
}

func (d *Data) Set(o Opt, v interface{}) {
	d.items[o] = v
}

func (d *Data) Get(o Opt) interface{} {
	return d.items[o]
}

func (d *Data) Test(o Opt) bool {
	_, ok := d.items[o]
	return ok
}

func (d *Data) Unset(o Opt) {
	delete(d.items, o)
}

func (d *Data) Typename() string {
	v, _ := d.items[OptTypename].(string)
	return v
}

func (d *Data) SetTypename(name string) {
	d.Set(OptTypename, name)
}

func (d *Data) Setname() string {
	v, _ := d.items[OptSetname].(string)
	return v
}

func (d *Data) SetSetname(name string) {
	d.Set(OptSetname, name)
}

// Family returns FamilyUnspec when the session carries no family yet.
func (d *Data) Family() Family {
	v, _ := d.items[OptFamily].(Family)
	return v
}

func (d *Data) SetFamily(f Family) {
	d.Set(OptFamily, f)
}

func (d *Data) Revision() (uint8, bool) {
	v, ok := d.items[OptRevision].(uint8)
	return v, ok
}

func (d *Data) SetRevision(r uint8) {
	d.Set(OptRevision, r)
}

func (d *Data) RevisionMin() (uint8, bool) {
	v, ok := d.items[OptRevisionMin].(uint8)
	return v, ok
}

func (d *Data) SetRevisionMin(r uint8) {
	d.Set(OptRevisionMin, r)
}
