package distcache

// An interactive session asks for the same table over and over while the
// operator fiddles with one number.  Recomputing is cheap but not free,
// and a session should never wonder whether the same inputs could print
// two different tables.

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ts4z/divvy/dep"
	"github.com/ts4z/divvy/payout"
	"github.com/ts4z/divvy/varz"
)

var (
	cacheHits   = varz.NewInt("cacheHits")
	cacheMisses = varz.NewInt("cacheMisses")
)

type Nower interface {
	Now() time.Time
}

// Key is the whole input triple; sessions asking the same question share
// an answer.
type Key struct {
	Winners    int
	TotalCoins int64
	MinCoins   int64
}

type entry struct {
	dist       payout.Distribution
	computedAt time.Time
}

// Cache memoizes successful distributions.  Failures are not cached; they
// are cheap to reproduce and the caller wants the live message.
type Cache struct {
	clock Nower
	ttl   time.Duration
	cache *lru.Cache[Key, entry]
}

func New(size int, ttl time.Duration, clock Nower) *Cache {
	cache, err := lru.New[Key, entry](size)
	if err != nil {
		panic(err)
	}
	return &Cache{
		clock: dep.Required(clock),
		ttl:   ttl,
		cache: cache,
	}
}

// Compute returns the table for the triple, from cache when fresh.  The
// caller gets its own copy either way; tables inside the cache never leave.
func (c *Cache) Compute(winners int, totalCoins, minCoins int64) (payout.Distribution, error) {
	key := Key{Winners: winners, TotalCoins: totalCoins, MinCoins: minCoins}
	if e, ok := c.cache.Get(key); ok && e.computedAt.Add(c.ttl).After(c.clock.Now()) {
		cacheHits.Add(1)
		return e.dist.Clone(), nil
	}
	cacheMisses.Add(1)

	d, err := payout.Compute(winners, totalCoins, minCoins)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, entry{dist: d.Clone(), computedAt: c.clock.Now()})
	return d, nil
}

// Invalidate drops one triple from the cache.
func (c *Cache) Invalidate(winners int, totalCoins, minCoins int64) {
	c.cache.Remove(Key{Winners: winners, TotalCoins: totalCoins, MinCoins: minCoins})
}
