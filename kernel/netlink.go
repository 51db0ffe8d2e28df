package kernel

import (
	"context"
	"fmt"

	"github.com/vishvananda/netlink/nl"
	"golang.org/x/sys/unix"

	"libipset/data"
)

// nfnetlink ipset wire constants, from the kernel uapi. The message type
// numbering differs from Cmd which also carries library-only commands.
const (
	ipsetProtocol = 6

	ipsetCmdHeader = 12
	ipsetCmdType   = 13

	ipsetAttrProtocol    = 1
	ipsetAttrSetname     = 2
	ipsetAttrTypename    = 3
	ipsetAttrRevision    = 4
	ipsetAttrFamily      = 5
	ipsetAttrRevisionMin = 10

	nfgenmsgLen = 4
)

type netlinkQuerier struct{}

// NewNetlinkQuerier returns a querier speaking the nfnetlink ipset protocol
// directly to the kernel.
func NewNetlinkQuerier() IQuerier {
	return &netlinkQuerier{}
}

// Query issues the request synchronously. The netlink socket is not
// cancellable mid-flight, so ctx is consulted only before sending.
func (q *netlinkQuerier) Query(ctx context.Context, cmd Cmd, flags uint16, d *data.Data) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch cmd {
	case CmdType:
		return q.queryType(d)
	case CmdHeader:
		return q.queryHeader(d)
	default:
		return fmt.Errorf("cmd %s: %w", cmd, ErrUnsupportedCmd)
	}
}

func newRequest(msgType int) *nl.NetlinkRequest {
	req := nl.NewNetlinkRequest(msgType|(unix.NFNL_SUBSYS_IPSET<<8), unix.NLM_F_REQUEST)
	req.AddData(&nl.Nfgenmsg{
		NfgenFamily: uint8(unix.AF_NETLINK),
		Version:     nl.NFNETLINK_V0,
		ResId:       0,
	})
	req.AddData(nl.NewRtAttr(ipsetAttrProtocol, nl.Uint8Attr(ipsetProtocol)))
	return req
}

func toWireFamily(f data.Family) uint8 {
	switch f {
	case data.FamilyInet:
		return unix.AF_INET
	case data.FamilyInet6:
		return unix.AF_INET6
	default:
		return unix.AF_UNSPEC
	}
}

func fromWireFamily(f uint8) data.Family {
	switch f {
	case unix.AF_INET:
		return data.FamilyInet
	case unix.AF_INET6:
		return data.FamilyInet6
	default:
		return data.FamilyUnspec
	}
}

func (q *netlinkQuerier) queryType(d *data.Data) error {
	typename := d.Typename()
	if typename == "" {
		return fmt.Errorf("no typename in session data")
	}
	req := newRequest(ipsetCmdType)
	req.AddData(nl.NewRtAttr(ipsetAttrTypename, nl.ZeroTerminated(typename)))
	req.AddData(nl.NewRtAttr(ipsetAttrFamily, nl.Uint8Attr(toWireFamily(d.Family()))))
	msgs, err := req.Execute(unix.NETLINK_NETFILTER, 0)
	if err != nil {
		return fmt.Errorf("query type %s failed, err:%w", typename, err)
	}
	return parseReply(msgs, d)
}

func (q *netlinkQuerier) queryHeader(d *data.Data) error {
	setname := d.Setname()
	if setname == "" {
		return fmt.Errorf("no setname in session data")
	}
	req := newRequest(ipsetCmdHeader)
	req.AddData(nl.NewRtAttr(ipsetAttrSetname, nl.ZeroTerminated(setname)))
	msgs, err := req.Execute(unix.NETLINK_NETFILTER, 0)
	if err != nil {
		return fmt.Errorf("query header of set %s failed, err:%w", setname, err)
	}
	return parseReply(msgs, d)
}

func parseReply(msgs [][]byte, d *data.Data) error {
	for _, msg := range msgs {
		if len(msg) < nfgenmsgLen {
			continue
		}
		attrs, err := nl.ParseRouteAttr(msg[nfgenmsgLen:])
		if err != nil {
			return fmt.Errorf("parse reply attributes failed, err:%w", err)
		}
		for _, attr := range attrs {
			typ := attr.Attr.Type &^ (unix.NLA_F_NESTED | unix.NLA_F_NET_BYTEORDER)
			switch typ {
			case ipsetAttrSetname:
				d.SetSetname(nl.BytesToString(attr.Value))
			case ipsetAttrTypename:
				d.SetTypename(nl.BytesToString(attr.Value))
			case ipsetAttrRevision:
				if len(attr.Value) > 0 {
					d.SetRevision(attr.Value[0])
				}
			case ipsetAttrRevisionMin:
				if len(attr.Value) > 0 {
					d.SetRevisionMin(attr.Value[0])
				}
			case ipsetAttrFamily:
				if len(attr.Value) > 0 {
					d.SetFamily(fromWireFamily(attr.Value[0]))
				}
			}
		}
	}
	return nil
}
