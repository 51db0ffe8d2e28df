package libipset

import (
	"libipset/cache"
	"libipset/dao"
	"libipset/kernel"
	"libipset/settype"
)

type config struct {
	registry *settype.Registry
	cache    *cache.Cache
	querier  kernel.IQuerier
	journal  dao.ISetOpDao
}

type Option func(c *config)

func WithRegistry(r *settype.Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

func WithCache(sc *cache.Cache) Option {
	return func(c *config) {
		c.cache = sc
	}
}

func WithQuerier(q kernel.IQuerier) Option {
	return func(c *config) {
		c.querier = q
	}
}

// WithJournal enables persisting accepted cache mutations; nil disables it.
func WithJournal(j dao.ISetOpDao) Option {
	return func(c *config) {
		c.journal = j
	}
}

func applyOpts(opts ...Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
