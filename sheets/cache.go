package sheets

import (
	"os"
	"sync"
	"time"

	"stpsched/schedule"
)

// gridCache is a read-through cache of parsed grids keyed by file path,
// roster type and modification time. Grids are immutable once read, so a
// cache hit is indistinguishable from a fresh parse; a re-uploaded file
// changes its mtime and misses.
type gridCache struct {
	mu      sync.Mutex
	entries map[gridKey]Grid
}

type gridKey struct {
	path    string
	roster  schedule.RosterType
	modTime time.Time
}

func newGridCache() *gridCache {
	return &gridCache{entries: make(map[gridKey]Grid)}
}

// read returns the cached grid for the file, reading and caching it on
// miss. When the file cannot be stat'ed the cache is bypassed and the
// reader reports the failure.
func (c *gridCache) read(path string, roster schedule.RosterType) (Grid, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return ReadGrid(path, roster)
	}

	key := gridKey{path: path, roster: roster, modTime: stat.ModTime()}

	c.mu.Lock()
	grid, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return grid, nil
	}

	grid, err = ReadGrid(path, roster)
	if err != nil {
		return Grid{}, err
	}

	c.mu.Lock()
	c.entries[key] = grid
	c.mu.Unlock()

	return grid, nil
}
