package registry

import (
	"sort"
	"sync"

	"github.com/philipp01105/sitelog/core"
	"github.com/philipp01105/sitelog/formatter"
	"github.com/philipp01105/sitelog/logger"
	"github.com/philipp01105/sitelog/sink"
)

// LoggerInfo is one row of a Snapshot: a key and its current level.
type LoggerInfo struct {
	Key   string     `json:"key"`
	Level core.Level `json:"level"`
}

// Registry owns every logger handle in the process. It maps keys to
// handles, creates handles on first use, and is the only component
// allowed to mutate their levels. Handles are never removed, so a
// reference obtained once stays valid for the process lifetime.
//
// Registries are explicitly constructed and injectable; tests create
// isolated instances instead of sharing process-wide state.
type Registry struct {
	mu      sync.RWMutex
	loggers map[string]*logger.Logger
	sink    sink.Sink

	defaultLevel   core.Level
	defaultPattern string
	captureCaller  bool
	sinkArmed      bool
}

// Option configures a Registry at construction.
type Option func(*Registry)

// WithDefaultLevel sets the level new handles start at. Defaults to
// InfoLevel.
func WithDefaultLevel(level core.Level) Option {
	return func(r *Registry) { r.defaultLevel = level }
}

// WithDefaultPattern sets the output pattern recorded on new handles.
func WithDefaultPattern(pattern string) Option {
	return func(r *Registry) { r.defaultPattern = pattern }
}

// WithCaller enables caller capture on handles built by this registry.
func WithCaller(enabled bool) Option {
	return func(r *Registry) { r.captureCaller = enabled }
}

// New creates a Registry whose handles share the given sink.
func New(s sink.Sink, opts ...Option) *Registry {
	r := &Registry{
		loggers:      make(map[string]*logger.Logger),
		sink:         s,
		defaultLevel: core.InfoLevel,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.defaultPattern == "" {
		if ps, ok := s.(interface{ Pattern() *formatter.Pattern }); ok {
			// Inherit the sink's pattern so handle introspection
			// reports what actually renders.
			r.defaultPattern = ps.Pattern().Source()
		}
	}
	return r
}

// Get returns the handle for key without creating one.
func (r *Registry) Get(key string) (*logger.Logger, bool) {
	r.mu.RLock()
	lg, ok := r.loggers[key]
	r.mu.RUnlock()
	return lg, ok
}

// GetOrCreate returns the handle for key, creating it at the default
// level if absent. Concurrent first-time calls for the same key
// converge on one handle: the lookup and the create run as a single
// critical section under the write lock.
func (r *Registry) GetOrCreate(key string) *logger.Logger {
	r.mu.RLock()
	lg := r.loggers[key]
	r.mu.RUnlock()
	if lg != nil {
		return lg
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if lg := r.loggers[key]; lg != nil {
		// Lost the creation race; converge on the winner.
		return lg
	}
	return r.createLocked(key, r.defaultLevel)
}

// SetLevel updates the level of key's handle in place. Unknown keys
// are created on demand at the requested level, so the update always
// takes effect and the returned bool is always true today; it remains
// in the signature for callers written against registries that
// rejected unknown keys.
func (r *Registry) SetLevel(key string, level core.Level) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if lg, ok := r.loggers[key]; ok {
		lg.SetLevel(level)
		return true
	}
	r.createLocked(key, level)
	return true
}

// SetAllLevels sets every existing handle to level and makes it the
// default for handles created afterwards.
func (r *Registry) SetAllLevels(level core.Level) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.defaultLevel = level
	for _, lg := range r.loggers {
		lg.SetLevel(level)
	}
}

// DefaultLevel returns the level new handles currently start at.
func (r *Registry) DefaultLevel() core.Level {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultLevel
}

// Snapshot returns a point-in-time listing of keys and levels, sorted
// by key. Only the map copy happens under the read lock; sorting runs
// outside it so writers are not blocked by large listings.
func (r *Registry) Snapshot() []LoggerInfo {
	r.mu.RLock()
	infos := make([]LoggerInfo, 0, len(r.loggers))
	for key, lg := range r.loggers {
		infos = append(infos, LoggerInfo{Key: key, Level: lg.Level()})
	}
	r.mu.RUnlock()

	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos
}

// createLocked builds and registers a handle. Callers must hold the
// write lock.
func (r *Registry) createLocked(key string, level core.Level) *logger.Logger {
	r.armSinkLocked()
	lg := logger.New(key, level, r.defaultPattern, r.sink, logger.WithCaller(r.captureCaller))
	r.loggers[key] = lg
	return lg
}

// armSinkLocked installs the concurrency lock into the shared sink the
// first time a handle is created, and disables message escaping so the
// pattern output stays verbatim. Sinks that manage their own locking
// (anything not Lockable) are used as-is. Callers must hold the write
// lock, which is what makes the install race-free: the first creator
// arms the sink before any handle is published.
func (r *Registry) armSinkLocked() {
	if r.sinkArmed {
		return
	}
	if ls, ok := r.sink.(sink.Lockable); ok && !ls.HasLock() {
		ls.SetLock(new(sync.Mutex))
		ls.SetEscapeNewlines(false)
	}
	r.sinkArmed = true
}
