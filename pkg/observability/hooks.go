// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about input loading, profile drawing and exports.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the rendering packages
// never import a metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetProfileHooks(&myProfileHooks{})
//	    observability.SetExportHooks(&myExportHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Profile().OnDrawStart(ctx, direction, len(holes))
//	// ... assemble and populate ...
//	observability.Profile().OnDrawComplete(ctx, direction, profiles, connectors, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Input Hooks
// =============================================================================

// InputHooks receives events from drill-hole readers.
type InputHooks interface {
	OnImportStart(ctx context.Context, path string)
	OnImportComplete(ctx context.Context, path string, holes int, duration time.Duration, err error)
}

// =============================================================================
// Profile Hooks
// =============================================================================

// ProfileHooks receives events from profile drawing.
type ProfileHooks interface {
	// OnDrawStart records the start of a redraw.
	OnDrawStart(ctx context.Context, direction string, holes int)

	// OnDrawComplete records a finished redraw.
	OnDrawComplete(ctx context.Context, direction string, profiles, connectors int, duration time.Duration, err error)

	// OnZoom records an interactive zoom step.
	OnZoom(ctx context.Context, scale float64)
}

// =============================================================================
// Export Hooks
// =============================================================================

// ExportHooks receives events from scene exports.
type ExportHooks interface {
	OnExportStart(ctx context.Context, name, format string)
	OnExportComplete(ctx context.Context, name, format string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopInputHooks is a no-op implementation of InputHooks.
type NoopInputHooks struct{}

func (NoopInputHooks) OnImportStart(context.Context, string)                               {}
func (NoopInputHooks) OnImportComplete(context.Context, string, int, time.Duration, error) {}

// NoopProfileHooks is a no-op implementation of ProfileHooks.
type NoopProfileHooks struct{}

func (NoopProfileHooks) OnDrawStart(context.Context, string, int) {}
func (NoopProfileHooks) OnDrawComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopProfileHooks) OnZoom(context.Context, float64) {}

// NoopExportHooks is a no-op implementation of ExportHooks.
type NoopExportHooks struct{}

func (NoopExportHooks) OnExportStart(context.Context, string, string)                          {}
func (NoopExportHooks) OnExportComplete(context.Context, string, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	inputHooks   InputHooks   = NoopInputHooks{}
	profileHooks ProfileHooks = NoopProfileHooks{}
	exportHooks  ExportHooks  = NoopExportHooks{}
	hooksMu      sync.RWMutex
)

// SetInputHooks registers custom input hooks.
// This should be called once at application startup before any input is read.
func SetInputHooks(h InputHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		inputHooks = h
	}
}

// SetProfileHooks registers custom profile hooks.
func SetProfileHooks(h ProfileHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		profileHooks = h
	}
}

// SetExportHooks registers custom export hooks.
func SetExportHooks(h ExportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		exportHooks = h
	}
}

// Input returns the registered input hooks.
func Input() InputHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return inputHooks
}

// Profile returns the registered profile hooks.
func Profile() ProfileHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return profileHooks
}

// Export returns the registered export hooks.
func Export() ExportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return exportHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	inputHooks = NoopInputHooks{}
	profileHooks = NoopProfileHooks{}
	exportHooks = NoopExportHooks{}
}
