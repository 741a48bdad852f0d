package population

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/greenbag/intervention-cli/internal/model"
)

// Cache memoizes Generate by (total, seed). Generation is deterministic, so
// a hit is always equivalent to regenerating. Safe for concurrent use.
type Cache struct {
	entries *lru.Cache[string, []model.CustomerRecord]
	opts    []Option
}

// NewCache creates a cache holding up to size populations. A non-positive
// size falls back to a single entry.
func NewCache(size int, opts ...Option) *Cache {
	entries, err := lru.New[string, []model.CustomerRecord](size)
	if err != nil {
		entries, _ = lru.New[string, []model.CustomerRecord](1)
	}
	return &Cache{entries: entries, opts: opts}
}

// Get returns the population for (total, seed), generating it on a miss.
// Callers receive their own copy of the slice.
func (c *Cache) Get(total int, seed int64) []model.CustomerRecord {
	key := fmt.Sprintf("%d:%d", total, seed)
	if rows, ok := c.entries.Get(key); ok {
		return slices.Clone(rows)
	}

	rows := Generate(total, seed, c.opts...)
	c.entries.Add(key, rows)
	zap.L().Debug("population: generated",
		zap.Int("total", total),
		zap.Int64("seed", seed),
	)
	return slices.Clone(rows)
}

// Len returns the number of cached populations.
func (c *Cache) Len() int {
	return c.entries.Len()
}
