package dao

import (
	"context"
	"os"
	"testing"

	_ "github.com/glebarez/go-sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"libipset/db"
	"libipset/model"
)

func TestSetOpDao(t *testing.T) {
	path := "/tmp/ipset_op_test_" + uuid.NewString() + ".db"
	defer os.Remove(path)
	assert.NoError(t, db.InitDB(path))

	d, err := NewSetOpDao()
	assert.NoError(t, err)
	ctx := context.Background()
	{ //journal a few mutations
		assert.NoError(t, d.AddOpRecord(ctx, "create", "s1", "hash:ip", "inet", ""))
		assert.NoError(t, d.AddOpRecord(ctx, "create", "s2", "hash:net", "inet", ""))
		assert.NoError(t, d.AddOpRecord(ctx, "rename", "s1", "hash:ip", "inet", "s3"))
	}
	{ //scan the full journal
		limit := 1
		cnt, err := d.ScanOpRecords(ctx, limit, func(ctx context.Context, ops []*model.SetOpTab) error {
			for _, op := range ops {
				t.Logf("recv op item:%v", *op)
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, int(cnt))
	}
	{ //list by set name
		ops, err := d.ListOpRecords(ctx, &model.ListSetOpCondition{SetName: "s1"}, 0, 10)
		assert.NoError(t, err)
		assert.Len(t, ops, 2)
		assert.Equal(t, "create", ops[0].Op)
		assert.Equal(t, "rename", ops[1].Op)
		assert.Equal(t, "s3", ops[1].Detail)
	}
	{ //delete then list again
		ok, err := d.DelOpRecords(ctx, "s1")
		assert.NoError(t, err)
		assert.True(t, ok)
		ops, err := d.ListOpRecords(ctx, &model.ListSetOpCondition{SetName: "s1"}, 0, 10)
		assert.NoError(t, err)
		assert.Len(t, ops, 0)
	}
}
