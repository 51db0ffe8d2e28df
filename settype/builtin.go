package settype

import (
	"libipset/data"
)

// builtinTypes is the registration metadata of the set types the library
// ships with. Only metadata is modeled here; the matching algorithms live in
// the kernel.
func builtinTypes() []*SetType {
	ipFlags := data.Flag(data.OptIP) | data.Flag(data.OptTimeout)
	return []*SetType{
		{
			Name:     "bitmap:ip",
			Aliases:  []string{"ipmap"},
			Family:   data.FamilyInet,
			Revision: 0,
			Full: [slotMax]uint64{
				SlotAdd:    ipFlags | data.Flag(data.OptIPTo) | data.Flag(data.OptCIDR),
				SlotDel:    data.Flag(data.OptIP) | data.Flag(data.OptIPTo) | data.Flag(data.OptCIDR),
				SlotTest:   data.Flag(data.OptIP),
				SlotCreate: data.Flag(data.OptIP) | data.Flag(data.OptIPTo) | data.Flag(data.OptCIDR) | data.Flag(data.OptTimeout),
			},
		},
		{
			Name:     "bitmap:port",
			Aliases:  []string{"portmap"},
			Family:   data.FamilyUnspec,
			Revision: 0,
			Full: [slotMax]uint64{
				SlotAdd:    data.Flag(data.OptPort) | data.Flag(data.OptPortTo) | data.Flag(data.OptTimeout),
				SlotDel:    data.Flag(data.OptPort) | data.Flag(data.OptPortTo),
				SlotTest:   data.Flag(data.OptPort),
				SlotCreate: data.Flag(data.OptPort) | data.Flag(data.OptPortTo) | data.Flag(data.OptTimeout),
			},
		},
		{
			Name:     "hash:ip",
			Aliases:  []string{"iphash"},
			Family:   data.FamilyInet46,
			Revision: 0,
			Full: [slotMax]uint64{
				SlotAdd:  ipFlags,
				SlotDel:  data.Flag(data.OptIP),
				SlotTest: data.Flag(data.OptIP),
			},
		},
		{
			Name:     "hash:ip",
			Aliases:  []string{"iphash"},
			Family:   data.FamilyInet46,
			Revision: 1,
			Full: [slotMax]uint64{
				SlotAdd:  ipFlags,
				SlotDel:  data.Flag(data.OptIP),
				SlotTest: data.Flag(data.OptIP),
			},
		},
		{
			Name:     "hash:net",
			Aliases:  []string{"nethash"},
			Family:   data.FamilyInet46,
			Revision: 0,
			Full: [slotMax]uint64{
				SlotAdd:  ipFlags | data.Flag(data.OptCIDR),
				SlotDel:  data.Flag(data.OptIP) | data.Flag(data.OptCIDR),
				SlotTest: data.Flag(data.OptIP) | data.Flag(data.OptCIDR),
			},
		},
		{
			Name:     "hash:net",
			Aliases:  []string{"nethash"},
			Family:   data.FamilyInet46,
			Revision: 1,
			Full: [slotMax]uint64{
				SlotAdd:  ipFlags | data.Flag(data.OptCIDR),
				SlotDel:  data.Flag(data.OptIP) | data.Flag(data.OptCIDR),
				SlotTest: data.Flag(data.OptIP) | data.Flag(data.OptCIDR),
			},
		},
		{
			Name:     "hash:ip,port",
			Aliases:  []string{"ipporthash"},
			Family:   data.FamilyInet46,
			Revision: 1,
			Full: [slotMax]uint64{
				SlotAdd:  ipFlags | data.Flag(data.OptPort),
				SlotDel:  data.Flag(data.OptIP) | data.Flag(data.OptPort),
				SlotTest: data.Flag(data.OptIP) | data.Flag(data.OptPort),
			},
		},
		{
			Name:     "list:set",
			Aliases:  []string{"setlist"},
			Family:   data.FamilyUnspec,
			Revision: 0,
			Full: [slotMax]uint64{
				SlotAdd:  data.Flag(data.OptName) | data.Flag(data.OptNameRef) | data.Flag(data.OptTimeout),
				SlotDel:  data.Flag(data.OptName),
				SlotTest: data.Flag(data.OptName),
			},
		},
	}
}

// NewBuiltinRegistry returns a registry preloaded with the builtin types.
func NewBuiltinRegistry() (*Registry, error) {
	r := NewRegistry()
	for _, t := range builtinTypes() {
		if err := r.Add(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}
