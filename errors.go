package libipset

import (
	"errors"
	"fmt"

	"libipset/data"
)

// ErrUnknownType means no registered set type matches the requested
// typename and family.
var ErrUnknownType = errors.New("unknown set type")

// VersionMismatchError means the revision ranges supported by the library
// and by the running kernel for a set type do not overlap.
type VersionMismatchError struct {
	TypeName  string
	Family    data.Family
	KernelMin uint8
	KernelMax uint8
	LibMin    uint8
	LibMax    uint8
}

// KernelNewer reports the mismatch direction: true when the kernel only
// supports revisions above what the library ships.
func (e *VersionMismatchError) KernelNewer() bool {
	return e.KernelMin > e.LibMax
}

func (e *VersionMismatchError) Error() string {
	if e.KernelNewer() {
		return fmt.Sprintf("kernel supports %s type with family %s in minimal revision %d "+
			"while the library supports maximal revision %d, upgrade your ipset library",
			e.TypeName, e.Family, e.KernelMin, e.LibMax)
	}
	return fmt.Sprintf("kernel supports %s type with family %s in maximal revision %d "+
		"while the library supports minimal revision %d, upgrade your kernel",
		e.TypeName, e.Family, e.KernelMax, e.LibMin)
}

// IncompatibleError means the kernel reported an exact (typename, family,
// revision) triple which has no counterpart in the registry. SetName is
// empty when the triple did not come from a named set header.
type IncompatibleError struct {
	SetName  string
	TypeName string
	Family   data.Family
	Revision uint8
}

func (e *IncompatibleError) Error() string {
	if e.SetName != "" {
		return fmt.Sprintf("kernel and library incompatible: set %s in kernel has got settype %s "+
			"with family %s and revision %d while the library does not support "+
			"the settype with that family and revision",
			e.SetName, e.TypeName, e.Family, e.Revision)
	}
	return fmt.Sprintf("kernel and library incompatible: settype %s with family %s "+
		"and revision %d not supported by the library",
		e.TypeName, e.Family, e.Revision)
}
