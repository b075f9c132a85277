// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about document assembly and the
// preview server.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnAssembleComplete(mode, size, duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the document-assembly pipeline.
type RenderHooks interface {
	// OnSerializeComplete records the tree serialization step.
	OnSerializeComplete(bytes int, duration time.Duration, err error)

	// OnComposeComplete records template composition for a script variant.
	OnComposeComplete(variant string, duration time.Duration, err error)

	// OnAssembleComplete records a finished document build.
	OnAssembleComplete(mode string, bytes int, duration time.Duration, err error)

	// OnWrite records an output write to a file or the console.
	OnWrite(destination string, bytes int, err error)
}

// =============================================================================
// Serve Hooks
// =============================================================================

// ServeHooks receives events from the preview server.
type ServeHooks interface {
	// OnRequest records a served HTTP request.
	OnRequest(method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnSerializeComplete(int, time.Duration, error)      {}
func (NoopRenderHooks) OnComposeComplete(string, time.Duration, error)     {}
func (NoopRenderHooks) OnAssembleComplete(string, int, time.Duration, error) {
}
func (NoopRenderHooks) OnWrite(string, int, error) {}

// NoopServeHooks is a no-op implementation of ServeHooks.
type NoopServeHooks struct{}

func (NoopServeHooks) OnRequest(string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	serveHooks  ServeHooks  = NoopServeHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any rendering.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetServeHooks registers custom serve hooks.
// This should be called once at application startup before serving.
func SetServeHooks(h ServeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serveHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Serve returns the registered serve hooks.
func Serve() ServeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serveHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
	serveHooks = NoopServeHooks{}
}
