// Package epoch tracks a monotonically increasing data epoch per page.
// Mutation actions bump the epochs of the pages whose data they changed;
// page responses echo the current epoch so clients can detect staleness
// without the server pushing invalidations.
package epoch

import (
	"sync"
	"sync/atomic"
)

// Page keys tracked by the registry. Circle and rival mutations bump
// PageDashboard too, since the dashboard renders circle signals and the
// rival comparison. PageActivity only ever changes upstream, so its
// epoch stays put until a mutation that touches commit data exists.
const (
	PageActivity      = "activity"
	PageCircles       = "circles"
	PageDashboard     = "dashboard"
	PageRivals        = "rivals"
	PageNotifications = "notifications"
)

// Registry holds one atomic counter per page key. The zero value is not
// usable; create one with NewRegistry.
type Registry struct {
	mu       sync.Mutex
	counters map[string]*atomic.Uint64
}

// NewRegistry creates an empty registry. Counters start at zero and are
// created on first use.
func NewRegistry() *Registry {
	return &Registry{counters: make(map[string]*atomic.Uint64)}
}

func (r *Registry) counter(page string) *atomic.Uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.counters[page]
	if !ok {
		c = &atomic.Uint64{}
		r.counters[page] = c
	}
	return c
}

// Current returns the page's current epoch.
func (r *Registry) Current(page string) uint64 {
	return r.counter(page).Load()
}

// Bump increments the epoch of each given page.
func (r *Registry) Bump(pages ...string) {
	for _, page := range pages {
		r.counter(page).Add(1)
	}
}
