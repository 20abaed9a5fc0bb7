package geometry

import "math"

// Grid is a rectangular tile grid. Blocked reports whether tile (tx, ty)
// stops sight lines and movement.
type Grid interface {
	Width() int
	Height() int
	Blocked(tx, ty int) bool
}

// LineOfSight samples the segment from (x1, y1) to (x2, y2) at ten samples
// per world unit and reports whether every sampled tile is in bounds and open.
func LineOfSight(g Grid, x1, y1, x2, y2 float64) bool {
	dx, dy := x2-x1, y2-y1
	steps := int(math.Floor(math.Hypot(dx, dy) * 10))
	if steps < 1 {
		steps = 1
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		tx := int(math.Floor(x1 + dx*t))
		ty := int(math.Floor(y1 + dy*t))
		if tx < 0 || ty < 0 || tx >= g.Width() || ty >= g.Height() {
			return false
		}
		if g.Blocked(tx, ty) {
			return false
		}
	}
	return true
}

const (
	// DefaultSightWindow is the number of lookups after which the cache is emptied.
	DefaultSightWindow = 60
	// DefaultSightCapacity bounds the number of memoized segments.
	DefaultSightCapacity = 1024
)

type sightKey struct {
	x1, y1, x2, y2 int32
}

func quantize(v float64) int32 {
	return int32(math.Round(v * 10))
}

// SightCache memoizes LineOfSight results keyed on coordinates rounded to one
// decimal place. The memo is dropped wholesale every window lookups, so a
// query may be answered with the result of a nearby segment inside one window.
type SightCache struct {
	grid     Grid
	window   int
	capacity int
	calls    int
	entries  map[sightKey]bool
}

func NewSightCache(g Grid) *SightCache {
	return NewSightCacheSize(g, DefaultSightWindow, DefaultSightCapacity)
}

func NewSightCacheSize(g Grid, window, capacity int) *SightCache {
	if window < 1 {
		window = DefaultSightWindow
	}
	if capacity < 1 {
		capacity = DefaultSightCapacity
	}
	return &SightCache{
		grid:     g,
		window:   window,
		capacity: capacity,
		entries:  make(map[sightKey]bool),
	}
}

func (c *SightCache) LineOfSight(x1, y1, x2, y2 float64) bool {
	c.calls++
	if c.calls > c.window {
		c.Reset()
		c.calls = 1
	}

	key := sightKey{quantize(x1), quantize(y1), quantize(x2), quantize(y2)}
	if visible, ok := c.entries[key]; ok {
		return visible
	}

	visible := LineOfSight(c.grid, x1, y1, x2, y2)
	if len(c.entries) >= c.capacity {
		clear(c.entries)
	}
	c.entries[key] = visible
	return visible
}

// Len returns the number of memoized segments.
func (c *SightCache) Len() int {
	return len(c.entries)
}

// Reset drops every memoized segment and restarts the lookup window.
func (c *SightCache) Reset() {
	clear(c.entries)
	c.calls = 0
}
