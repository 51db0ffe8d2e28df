package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Transport string           `json:"transport"` // netlink | exec
	DBFile    string           `json:"db_file"`
	LogConfig logger.LogConfig `json:"log_config"`
}

func Parse(f string) (*Config, error) {
	raw, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}
	c := &Config{
		Transport: "netlink",
	}
	if err := json.Unmarshal(raw, c); err != nil {
		return nil, err
	}
	if c.Transport != "netlink" && c.Transport != "exec" {
		return nil, fmt.Errorf("invalid transport:%s", c.Transport)
	}
	return c, nil
}
