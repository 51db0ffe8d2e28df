package dao

import (
	"context"
	"fmt"
	"time"

	"libipset/db"
	"libipset/model"

	"github.com/didi/gendry/builder"
	"github.com/xxxsen/common/database"
	"github.com/xxxsen/common/database/dbkit"
)

type ScanSetOpCallback func(ctx context.Context, ops []*model.SetOpTab) error

// ISetOpDao journals the set mutations mirrored into the cache, so a
// long-running manager can audit which sets it created, destroyed, renamed
// or swapped and when.
type ISetOpDao interface {
	AddOpRecord(ctx context.Context, op string, setname string, typename string, family string, detail string) error
	ListOpRecords(ctx context.Context, cond *model.ListSetOpCondition, offset, limit int64) ([]*model.SetOpTab, error)
	ScanOpRecords(ctx context.Context, limit int, cb ScanSetOpCallback) (int64, error)
	DelOpRecords(ctx context.Context, setname string) (bool, error)
}

type setOpDaoImpl struct {
	dbc func(ctx context.Context) database.IDatabase
}

func NewSetOpDao() (ISetOpDao, error) {
	impl := &setOpDaoImpl{
		dbc: db.GetClient,
	}
	if err := impl.init(); err != nil {
		return nil, err
	}
	return impl, nil
}

func (d *setOpDaoImpl) getClient(ctx context.Context) database.IDatabase {
	return d.dbc(ctx)
}

func (d *setOpDaoImpl) init() error {
	initItems := []struct {
		name string
		sql  string
	}{
		{
			name: "create table",
			sql: `
CREATE TABLE IF NOT EXISTS ipset_op_tab (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    op TEXT NOT NULL,
    set_name TEXT NOT NULL,
    type_name TEXT NOT NULL,
    family TEXT NOT NULL,
    detail TEXT NOT NULL,
    ctime INTEGER NOT NULL
);
`,
		},
		{
			name: "add_ctime_index",
			sql:  "CREATE INDEX IF NOT EXISTS idx_ctime ON ipset_op_tab(ctime);",
		},
	}
	for _, item := range initItems {
		if _, err := d.getClient(context.Background()).
			ExecContext(context.Background(), item.sql); err != nil {

			return fmt.Errorf("exec sql failed, job:%s, err:%w", item.name, err)
		}
	}
	return nil
}

func (d *setOpDaoImpl) table() string {
	return "ipset_op_tab"
}

func (d *setOpDaoImpl) AddOpRecord(ctx context.Context, op string, setname string, typename string, family string, detail string) error {
	client := d.getClient(ctx)
	now := time.Now().UnixMilli()
	sql := fmt.Sprintf(`insert into %s(op, set_name, type_name, family, detail, ctime) values(?, ?, ?, ?, ?, ?)`, d.table())
	if _, err := client.ExecContext(ctx, sql, op, setname, typename, family, detail, now); err != nil {
		return err
	}
	return nil
}

func (d *setOpDaoImpl) ListOpRecords(ctx context.Context,
	cond *model.ListSetOpCondition, offset, limit int64) ([]*model.SetOpTab, error) {
	if cond.CtimeBetween != nil && len(cond.CtimeBetween) != 2 {
		return nil, fmt.Errorf("ctime_between should has 2 elements, get:%d", len(cond.CtimeBetween))
	}
	where := map[string]interface{}{
		"_limit": []uint{uint(offset), uint(limit)},
	}
	if len(cond.SetName) > 0 {
		where["set_name"] = cond.SetName
	}
	if cond.CtimeBetween != nil {
		where["ctime >="] = cond.CtimeBetween[0]
		where["ctime <"] = cond.CtimeBetween[1]
	}
	rs := make([]*model.SetOpTab, 0, limit)
	if err := dbkit.SimpleQuery(ctx, d.getClient(ctx), d.table(), where, &rs, dbkit.ScanWithTagName("json")); err != nil {
		return nil, err
	}
	return rs, nil
}

func (d *setOpDaoImpl) ScanOpRecords(ctx context.Context, limit int, cb ScanSetOpCallback) (int64, error) {
	var lastid int64 = 0
	var total int64
	for {
		rs, err := d.selectByScan(ctx, lastid, limit)
		if err != nil {
			return 0, err
		}
		if len(rs) > 0 {
			if err := cb(ctx, rs); err != nil {
				return 0, err
			}
			total += int64(len(rs))
			lastid = int64(rs[len(rs)-1].ID)
		}
		if len(rs) < limit {
			break
		}
	}
	return total, nil
}

func (d *setOpDaoImpl) selectByScan(ctx context.Context, id int64, limit int) ([]*model.SetOpTab, error) {
	where := map[string]interface{}{
		"id >":     id,
		"_orderby": "id asc",
		"_limit":   []uint{0, uint(limit)},
	}
	client := d.getClient(ctx)
	rs := make([]*model.SetOpTab, 0, limit)
	if err := dbkit.SimpleQuery(ctx, client, d.table(), where, &rs, dbkit.ScanWithTagName("json")); err != nil {
		return nil, err
	}
	return rs, nil
}

func (d *setOpDaoImpl) DelOpRecords(ctx context.Context, setname string) (bool, error) {
	where := map[string]interface{}{
		"set_name": setname,
	}
	sql, args, err := builder.BuildDelete(d.table(), where)
	if err != nil {
		return false, fmt.Errorf("build delete failed, err:%w", err)
	}
	client := d.getClient(ctx)
	rs, err := client.ExecContext(ctx, sql, args...)
	if err != nil {
		return false, err
	}
	cnt, err := rs.RowsAffected()
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}
