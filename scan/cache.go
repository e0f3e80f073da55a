package scan

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/omarluq/autobind/catalog"
)

// Cache memoizes scan results per module.
//
// Modules are immutable once loaded, so entries are never invalidated or
// evicted. GetOrCompute runs the compute function at most once per key even
// under concurrent first access; callers for different keys never block one
// another. Failed computations are not memoized.
//
// The cache is a plain value object: construct one per driver (or per test)
// rather than sharing an implicit global.
type Cache struct {
	group   singleflight.Group
	mu      sync.RWMutex
	entries map[catalog.Module]Result
}

// NewCache creates an empty scan cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[catalog.Module]Result)}
}

// GetOrCompute returns the memoized scan result for the module, computing
// it with compute on first access. All concurrent callers for the same
// module observe the identical result; callers must not mutate it.
func (c *Cache) GetOrCompute(m catalog.Module, compute func(catalog.Module) (Result, error)) (Result, error) {
	c.mu.RLock()
	res, ok := c.entries[m]
	c.mu.RUnlock()
	if ok {
		return res, nil
	}

	v, err, _ := c.group.Do(m.String(), func() (any, error) {
		// Double-check: a previous flight may have stored the entry
		// between the fast-path miss and this call.
		c.mu.RLock()
		res, ok := c.entries[m]
		c.mu.RUnlock()
		if ok {
			return res, nil
		}

		res, err := compute(m)
		if err != nil {
			return Result{}, err
		}

		c.mu.Lock()
		c.entries[m] = res
		c.mu.Unlock()

		log := logger()
		log.Debug().
			Str("module", m.String()).
			Int("marked", len(res.Marked)).
			Msg("scan result cached")

		return res, nil
	})
	if err != nil {
		return Result{}, err
	}
	return v.(Result), nil
}

// Len returns the number of memoized modules.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
