package vgmesh

import (
	"log/slog"

	"github.com/gogpu/vgmesh/internal/lru"
)

// CacheStats counts cache lookups.
type CacheStats struct {
	// Hits are lookups answered from a slot.
	Hits uint64
	// Misses are lookups for a path without a slot.
	Misses uint64
	// Rebuilds are lookups whose path had a slot under a different key.
	Rebuilds uint64
	// Evictions are slots dropped because the cache was full.
	Evictions uint64
}

// cacheKey identifies one tessellation of one path.
type cacheKey struct {
	version   uint64
	transform uint64
	tess      float32
	dist      float32
}

type cacheSlot struct {
	key      cacheKey
	contours *Contours
}

// Cache memoizes tessellations. It keeps one slot per path identity
// holding the contours of the most recent (version, transform, tolerances)
// combination; a request under another combination replaces the slot.
// Alternating between two transforms on the same path therefore
// re-tessellates on every call.
//
// Paths are kept in LRU order up to the configured capacity. Cached
// Contours are private copies and stay valid after eviction.
//
// Cache is not safe for concurrent use.
type Cache struct {
	tess  *Tessellator
	slots *lru.Map[uint64, *cacheSlot]
	stats CacheStats
}

// NewCache creates a cache.
//
// Example:
//
//	cache := vgmesh.NewCache(vgmesh.WithCapacity(256), vgmesh.WithDevicePixelRatio(2))
//	contours := cache.GetOrBuild(p, xf, vgmesh.Tolerances{})
func NewCache(opts ...Option) *Cache {
	o := applyOptions(opts)
	c := &Cache{tess: NewTessellator(opts...)}
	c.slots = lru.New(o.capacity, func(id uint64, _ *cacheSlot) {
		c.stats.Evictions++
		Logger().Debug("vgmesh: cache eviction", slog.Uint64("path", id))
	})
	return c
}

// GetOrBuild returns the contours of p under xf and tol, tessellating only
// when the path slot holds another key. Zero tolerance fields take the
// cache defaults.
//
// The returned Contours are shared with the cache and must not be
// modified.
func (c *Cache) GetOrBuild(p *Path, xf Transform, tol Tolerances) *Contours {
	def := c.tess.Tolerances()
	if tol.Tess <= 0 {
		tol.Tess = def.Tess
	}
	if tol.Dist <= 0 {
		tol.Dist = def.Dist
	}
	if tol.Fringe <= 0 {
		tol.Fringe = def.Fringe
	}

	id := p.ID()
	key := cacheKey{
		version:   p.Version(),
		transform: xf.CacheKey(),
		tess:      tol.Tess,
		dist:      tol.Dist,
	}

	slot, ok := c.slots.Get(id)
	if ok && slot.key == key {
		c.stats.Hits++
		return slot.contours
	}

	contours := c.tess.Tessellate(p, xf, tol).Clone()
	if ok {
		c.stats.Rebuilds++
		Logger().Debug("vgmesh: cache rebuild",
			slog.Uint64("path", id),
			slog.Uint64("version", key.version),
			slog.Uint64("transform", key.transform),
		)
		slot.key = key
		slot.contours = contours
		return contours
	}

	c.stats.Misses++
	c.slots.Put(id, &cacheSlot{key: key, contours: contours})
	return contours
}

// Invalidate drops the slot of p and reports whether it existed.
func (c *Cache) Invalidate(p *Path) bool {
	return c.slots.Remove(p.ID())
}

// Clear drops all slots. Statistics are kept.
func (c *Cache) Clear() {
	c.slots.Clear()
}

// Len returns the number of cached paths.
func (c *Cache) Len() int {
	return c.slots.Len()
}

// Stats returns the lookup counters.
func (c *Cache) Stats() CacheStats {
	return c.stats
}

// ResetStats zeroes the lookup counters.
func (c *Cache) ResetStats() {
	c.stats = CacheStats{}
}
