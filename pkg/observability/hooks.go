// Package observability provides hooks for metrics, tracing, and logging.
//
// The package uses a simple hooks pattern: interfaces for each event
// category, no-op defaults, and a global registry populated once at
// application startup. Libraries emit events without depending on any
// particular observability backend:
//
//	observability.Walk().OnWalkStart(ctx, "bfs", start)
//	// ... run the traversal ...
//	observability.Walk().OnWalkComplete(ctx, "bfs", start, visited, elapsed)
package observability

import (
	"context"
	"sync"
	"time"
)

// WalkHooks receives events from graph traversals.
type WalkHooks interface {
	// OnWalkStart records the beginning of a DFS or BFS walk.
	OnWalkStart(ctx context.Context, algo, start string)

	// OnWalkComplete records a finished (or abandoned) walk along with the
	// number of nodes actually consumed.
	OnWalkComplete(ctx context.Context, algo, start string, visited int, duration time.Duration)
}

// SortHooks receives events from topological sorts.
type SortHooks interface {
	OnSortStart(ctx context.Context, nodeCount int)
	OnSortComplete(ctx context.Context, nodeCount int, duration time.Duration, err error)
}

// ServerHooks receives events from the HTTP API.
type ServerHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response status and handling time.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// NoopWalkHooks is a no-op implementation of WalkHooks.
type NoopWalkHooks struct{}

func (NoopWalkHooks) OnWalkStart(context.Context, string, string)                        {}
func (NoopWalkHooks) OnWalkComplete(context.Context, string, string, int, time.Duration) {}

// NoopSortHooks is a no-op implementation of SortHooks.
type NoopSortHooks struct{}

func (NoopSortHooks) OnSortStart(context.Context, int)                          {}
func (NoopSortHooks) OnSortComplete(context.Context, int, time.Duration, error) {}

// NoopServerHooks is a no-op implementation of ServerHooks.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string)                      {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

var (
	walkHooks   WalkHooks   = NoopWalkHooks{}
	sortHooks   SortHooks   = NoopSortHooks{}
	serverHooks ServerHooks = NoopServerHooks{}
	hooksMu     sync.RWMutex
)

// SetWalkHooks registers custom traversal hooks.
// This should be called once at application startup.
func SetWalkHooks(h WalkHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		walkHooks = h
	}
}

// SetSortHooks registers custom sort hooks.
// This should be called once at application startup.
func SetSortHooks(h SortHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sortHooks = h
	}
}

// SetServerHooks registers custom server hooks.
// This should be called once at application startup.
func SetServerHooks(h ServerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serverHooks = h
	}
}

// Walk returns the registered traversal hooks.
func Walk() WalkHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return walkHooks
}

// Sort returns the registered sort hooks.
func Sort() SortHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sortHooks
}

// Server returns the registered server hooks.
func Server() ServerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serverHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	walkHooks = NoopWalkHooks{}
	sortHooks = NoopSortHooks{}
	serverHooks = NoopServerHooks{}
}
