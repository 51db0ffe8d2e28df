package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/xxxsen/common/logger"
	"go.uber.org/zap"

	"libipset"
	"libipset/config"
	"libipset/dao"
	"libipset/data"
	"libipset/db"
	"libipset/kernel"
	"libipset/settype"
)

var (
	conf      = flag.String("config", "./config.json", "config")
	listTypes = flag.Bool("list-types", false, "list the registered set types")
	resolve   = flag.String("resolve", "", "resolve a typename or alias to its canonical name")
	check     = flag.String("check", "", "resolve the type of an existing kernel set")
)

func main() {
	flag.Parse()
	c, err := config.Parse(*conf)
	if err != nil {
		log.Fatalf("parse config failed, err:%v", err)
	}
	logkit := logger.Init(c.LogConfig.File, c.LogConfig.Level, int(c.LogConfig.FileCount), int(c.LogConfig.FileSize), int(c.LogConfig.KeepDays), c.LogConfig.Console)

	registry, err := settype.NewBuiltinRegistry()
	if err != nil {
		logkit.Fatal("init type registry failed", zap.Error(err))
	}
	querier, err := buildQuerier(c.Transport)
	if err != nil {
		logkit.Fatal("init kernel querier failed", zap.Error(err))
	}
	opts := []libipset.Option{
		libipset.WithRegistry(registry),
		libipset.WithQuerier(querier),
	}
	if len(c.DBFile) > 0 {
		if err := db.InitDB(c.DBFile); err != nil {
			logkit.Fatal("init op db failed", zap.Error(err))
		}
		journal, err := dao.NewSetOpDao()
		if err != nil {
			logkit.Fatal("init op journal failed", zap.Error(err))
		}
		opts = append(opts, libipset.WithJournal(journal))
	}
	lib, err := libipset.New(opts...)
	if err != nil {
		logkit.Fatal("init library failed", zap.Error(err))
	}
	defer lib.CacheFini()

	ctx := context.Background()
	switch {
	case *listTypes:
		for _, t := range lib.Registry().Types() {
			fmt.Printf("%s family:%s revision:%d maxsize(inet):%d\n",
				t.Name, t.Family, t.Revision, t.MaxSize(data.FamilyInet))
		}
	case len(*resolve) > 0:
		name, ok := lib.ResolveTypename(*resolve)
		if !ok {
			logkit.Fatal("unknown typename", zap.String("name", *resolve))
		}
		fmt.Println(name)
	case len(*check) > 0:
		d := data.NewData()
		d.SetSetname(*check)
		typ, err := lib.TypeGet(ctx, d, kernel.CmdTest)
		if err != nil {
			logkit.Fatal("resolve set type failed", zap.String("set", *check), zap.Error(err))
		}
		fmt.Printf("%s type:%s family:%s revision:%d\n", *check, typ.Name, d.Family(), typ.Revision)
	default:
		flag.Usage()
	}
}

func buildQuerier(transport string) (kernel.IQuerier, error) {
	if transport == "exec" {
		return kernel.NewExecQuerier()
	}
	return kernel.NewNetlinkQuerier(), nil
}
