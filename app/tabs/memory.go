package tabs

import (
	"context"
	"sync"

	"github.com/samber/lo"
)

// MemoryHost keeps tabs in process. It stands in for the browser in the
// server and in tests.
type MemoryHost struct {
	mu     sync.Mutex
	tabs   []Tab
	nextID int
}

// NewMemoryHost creates a host with one inactive tab per url.
func NewMemoryHost(urls ...string) *MemoryHost {
	h := &MemoryHost{nextID: 1}
	for _, url := range urls {
		h.Open(url, false)
	}
	return h
}

// Open adds a tab and returns it. Opening an active tab deactivates the rest.
func (h *MemoryHost) Open(url string, active bool) Tab {
	h.mu.Lock()
	defer h.mu.Unlock()

	if active {
		for i := range h.tabs {
			h.tabs[i].Active = false
		}
	}

	tab := Tab{ID: h.nextID, Active: active, URL: url}
	h.nextID++
	h.tabs = append(h.tabs, tab)
	return tab
}

// Tabs returns a snapshot of the open tabs.
func (h *MemoryHost) Tabs() []Tab {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]Tab(nil), h.tabs...)
}

// Query returns the tabs whose URL matches pattern.
func (h *MemoryHost) Query(ctx context.Context, pattern string) ([]Tab, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	return lo.Filter(h.tabs, func(tab Tab, _ int) bool {
		return MatchPattern(pattern, tab.URL)
	}), nil
}

// Remove closes the tabs with the given ids. Unknown ids are ignored.
func (h *MemoryHost) Remove(ctx context.Context, ids []int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.tabs = lo.Reject(h.tabs, func(tab Tab, _ int) bool {
		return lo.Contains(ids, tab.ID)
	})
	return nil
}
