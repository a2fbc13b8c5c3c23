package registry

import (
	"sync/atomic"

	"github.com/philipp01105/sitelog/logger"
)

// CallSite is a per-instrumentation-point cache of a handle reference.
// Declare one next to each logging statement; the first execution pays
// the registry lock once to bind, and every execution after that is a
// single atomic load.
//
// A CallSite moves from unbound to bound exactly once and never back.
// The cached reference stays valid forever because the registry never
// deletes handles.
//
//	var site registry.CallSite
//
//	func handleRequest(reg *registry.Registry) {
//		site.Bind(reg, "server/request.go").Debugf("handling")
//	}
type CallSite struct {
	handle atomic.Pointer[logger.Logger]
}

// Bind returns the cached handle, binding the cell on first use via
// the registry. Once bound, the registry is never consulted again.
//
// Racing first calls may each reach GetOrCreate, but they all receive
// the same handle identity, so the duplicate stores are harmless.
func (c *CallSite) Bind(r *Registry, key string) *logger.Logger {
	if lg := c.handle.Load(); lg != nil {
		return lg
	}
	lg := r.GetOrCreate(key)
	c.handle.Store(lg)
	return lg
}

// Bound reports whether the cell holds a handle.
func (c *CallSite) Bound() bool {
	return c.handle.Load() != nil
}
