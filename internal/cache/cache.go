package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

// linkTTL matches the Cache-Control max-age served on redirects, so the
// in-process cache never serves a link staler than intermediaries already
// tolerate.
const linkTTL = 300 * time.Second

// LinkCache keeps resolved link targets off the redirect hot path. Only
// existing links are cached; lookups that found no row are never stored.
type LinkCache struct {
	cache *ristretto.Cache
}

func New(maxSizePow2 int) (*LinkCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &LinkCache{cache: cache}, nil
}

func (c *LinkCache) Get(id string) (string, bool) {
	val, found := c.cache.Get(id)
	if !found {
		return "", false
	}
	return val.(string), true
}

func (c *LinkCache) Set(id, targetURL string) {
	cost := int64(len(id) + len(targetURL))
	c.cache.SetWithTTL(id, targetURL, cost, linkTTL)
}

func (c *LinkCache) Close() {
	c.cache.Close()
}

func (c *LinkCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
