package kernel

import (
	"context"
	"errors"

	"libipset/data"
)

// Cmd identifies the command on whose behalf the kernel is consulted.
type Cmd uint8

const (
	CmdNone Cmd = iota
	CmdCreate
	CmdDestroy
	CmdFlush
	CmdRename
	CmdSwap
	CmdList
	CmdSave
	CmdAdd
	CmdDel
	CmdTest
	CmdHeader
	CmdType
)

func (c Cmd) String() string {
	switch c {
	case CmdCreate:
		return "create"
	case CmdDestroy:
		return "destroy"
	case CmdFlush:
		return "flush"
	case CmdRename:
		return "rename"
	case CmdSwap:
		return "swap"
	case CmdList:
		return "list"
	case CmdSave:
		return "save"
	case CmdAdd:
		return "add"
	case CmdDel:
		return "del"
	case CmdTest:
		return "test"
	case CmdHeader:
		return "header"
	case CmdType:
		return "type"
	default:
		return "none"
	}
}

// ErrUnsupportedCmd is returned by queriers for commands they cannot issue.
var ErrUnsupportedCmd = errors.New("unsupported kernel command")

// IQuerier performs one synchronous kernel round trip. A CmdType query reads
// the typename and family from d and writes back the revision range the
// kernel supports (OptRevision, OptRevisionMin). A CmdHeader query reads the
// setname and writes back the typename, family and exact revision of the
// existing set. Queriers do not retry; errors surface to the caller as is.
type IQuerier interface {
	Query(ctx context.Context, cmd Cmd, flags uint16, d *data.Data) error
}
