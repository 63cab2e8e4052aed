package services

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is the lookup cache the food source adapters take by injection, so a
// test can control staleness and two adapter instances never share state.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Invalidate(key string)
}

// TTLCache bounds staleness; the original process-lifetime maps did not.
type TTLCache struct {
	c *gocache.Cache
}

func NewTTLCache(ttl time.Duration) *TTLCache {
	return &TTLCache{c: gocache.New(ttl, 2*ttl)}
}

func (t *TTLCache) Get(key string) (any, bool) { return t.c.Get(key) }

func (t *TTLCache) Set(key string, value any) { t.c.SetDefault(key, value) }

func (t *TTLCache) Invalidate(key string) { t.c.Delete(key) }
