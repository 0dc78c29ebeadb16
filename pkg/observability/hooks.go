// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about pipeline execution, store operations, and document
// dispatch.
//
// # Architecture
//
// Hook interfaces are defined per event category, each with a no-op default.
// main registers custom implementations before any work starts; libraries
// only ever read the registry.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLoadStart(ctx, path)
//	// ... load definition ...
//	observability.Pipeline().OnLoadComplete(ctx, path, chartCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the build pipeline.
type PipelineHooks interface {
	// Load events
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, source string, chartCount int, duration time.Duration, err error)

	// Assemble events
	OnAssembleStart(ctx context.Context, chartCount int)
	OnAssembleComplete(ctx context.Context, seriesCount int, duration time.Duration, err error)

	// Publish events
	OnPublishStart(ctx context.Context, surface string)
	OnPublishComplete(ctx context.Context, surface string, size int, duration time.Duration, err error)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from document store operations.
type StoreHooks interface {
	// OnStoreHit records a read that found an entry.
	OnStoreHit(ctx context.Context, keyType string)

	// OnStoreMiss records a read that found nothing.
	OnStoreMiss(ctx context.Context, keyType string)

	// OnStoreSet records a write.
	OnStoreSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Bridge Hooks
// =============================================================================

// BridgeHooks receives events from the rendering surface boundary.
type BridgeHooks interface {
	// OnDispatch records a document handed to a surface.
	OnDispatch(ctx context.Context, chartCount, size int)

	// OnResponse records the surface's reply. responseType is empty when the
	// surface returned nothing.
	OnResponse(ctx context.Context, responseType string, duration time.Duration)

	// OnError records a failed dispatch.
	OnError(ctx context.Context, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string) {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnAssembleStart(context.Context, int)                          {}
func (NoopPipelineHooks) OnAssembleComplete(context.Context, int, time.Duration, error) {}
func (NoopPipelineHooks) OnPublishStart(context.Context, string)                        {}
func (NoopPipelineHooks) OnPublishComplete(context.Context, string, int, time.Duration, error) {
}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnStoreHit(context.Context, string)      {}
func (NoopStoreHooks) OnStoreMiss(context.Context, string)     {}
func (NoopStoreHooks) OnStoreSet(context.Context, string, int) {}

// NoopBridgeHooks is a no-op implementation of BridgeHooks.
type NoopBridgeHooks struct{}

func (NoopBridgeHooks) OnDispatch(context.Context, int, int)              {}
func (NoopBridgeHooks) OnResponse(context.Context, string, time.Duration) {}
func (NoopBridgeHooks) OnError(context.Context, error)                    {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	storeHooks    StoreHooks    = NoopStoreHooks{}
	bridgeHooks   BridgeHooks   = NoopBridgeHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// SetBridgeHooks registers custom bridge hooks.
func SetBridgeHooks(h BridgeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		bridgeHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Bridge returns the registered bridge hooks.
func Bridge() BridgeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return bridgeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	storeHooks = NoopStoreHooks{}
	bridgeHooks = NoopBridgeHooks{}
}
