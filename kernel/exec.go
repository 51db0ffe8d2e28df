package kernel

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"os/exec"

	"libipset/data"
)

type execQuerier struct {
	path string
}

// NewExecQuerier returns a querier shelling out to the ipset binary. The
// binary exposes no supported-revision query, so only CmdHeader is served;
// create negotiation needs the netlink querier.
func NewExecQuerier() (IQuerier, error) {
	path, err := exec.LookPath("ipset")
	if err != nil {
		return nil, fmt.Errorf("lookup ipset command failed, err:%w", err)
	}
	return &execQuerier{path: path}, nil
}

func (q *execQuerier) Query(ctx context.Context, cmd Cmd, flags uint16, d *data.Data) error {
	if cmd != CmdHeader {
		return fmt.Errorf("cmd %s: %w", cmd, ErrUnsupportedCmd)
	}
	setname := d.Setname()
	if setname == "" {
		return fmt.Errorf("no setname in session data")
	}
	raw, err := q.listTerse(ctx, setname)
	if err != nil {
		return err
	}
	return parseTerseListing(raw, d)
}

func (q *execQuerier) listTerse(ctx context.Context, setname string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, q.path, "list", "-t", "-o", "xml", setname)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("list set %s failed, err:%w, debug:%s", setname, err, stderr.String())
	}
	return stdout.Bytes(), nil
}

func parseTerseListing(raw []byte, d *data.Data) error {
	var ipsets xmlIpsets
	if err := xml.Unmarshal(raw, &ipsets); err != nil {
		return fmt.Errorf("parse ipset listing failed, err:%w", err)
	}
	if len(ipsets.Ipset) == 0 {
		return fmt.Errorf("invalid ipset output struct, no ipset data")
	}
	header := ipsets.Ipset[0]
	family, ok := data.FamilyFromString(header.Header.Family)
	if !ok {
		return fmt.Errorf("unknown family %s in ipset listing", header.Header.Family)
	}
	d.SetTypename(header.Type)
	d.SetRevision(header.Revision)
	d.SetFamily(family)
	return nil
}
