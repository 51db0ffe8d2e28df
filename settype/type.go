package settype

import (
	"libipset/data"
)

// KernelCheck is the memoized result of negotiating a type revision with the
// running kernel. It is the only mutable state of a registered type and is
// never reset for the process lifetime.
type KernelCheck uint8

const (
	KernelUnchecked KernelCheck = iota
	KernelOK
	KernelMismatch
)

// Slots index the per-command attribute flag sets of a set type.
const (
	SlotAdd = iota
	SlotDel
	SlotTest
	SlotCreate
	slotMax
)

// SetType describes a kernel set type implementation: its identifiers, the
// address families it serves, its revision and the attributes each command
// accepts. Instances are owned by a Registry once added and must not be
// modified afterwards except through SetKernelCheck.
type SetType struct {
	Name     string
	Aliases  []string
	Family   data.Family
	Revision uint8
	// Full[slot] is the bitset of data.Opt attributes legal for the command.
	Full [slotMax]uint64

	kernelCheck KernelCheck
	maxSize     map[data.Family]int
}

// Match reports whether name equals the canonical name or any alias.
func (t *SetType) Match(name string) bool {
	if name == t.Name {
		return true
	}
	for _, alias := range t.Aliases {
		if name == alias {
			return true
		}
	}
	return false
}

// MatchFamily reports whether the type may serve a session with family f.
func (t *SetType) MatchFamily(f data.Family) bool {
	return f == data.FamilyUnspec || t.Family == f || t.Family == data.FamilyInet46
}

func (t *SetType) KernelCheck() KernelCheck {
	return t.kernelCheck
}

func (t *SetType) SetKernelCheck(kc KernelCheck) {
	t.kernelCheck = kc
}

// MaxSize returns the maximum encoded size of an add-command entry for the
// given family, or zero when the type was not registered for that family.
func (t *SetType) MaxSize(f data.Family) int {
	return t.maxSize[f]
}

func (t *SetType) computeMaxSize(f data.Family) {
	var total int
	for o := data.OptNone + 1; o < data.OptMax; o++ {
		if data.Flag(o)&data.AdtFlags == 0 {
			continue
		}
		if data.Flag(o)&t.Full[SlotAdd] == 0 {
			continue
		}
		total += data.SizeOf(o, f)
	}
	if t.maxSize == nil {
		t.maxSize = make(map[data.Family]int, 2)
	}
	t.maxSize[f] = total
}
