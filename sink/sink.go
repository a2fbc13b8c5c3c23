package sink

import (
	"sync"

	"github.com/philipp01105/sitelog/core"
)

// Sink is the shared output target every logger handle writes through.
// Implementations format and transport entries; handles only decide
// whether an entry passes their level gate and when to flush.
type Sink interface {
	// Write formats and emits a single entry.
	Write(e *core.Entry) error

	// Flush forces buffered output to the underlying target.
	Flush() error
}

// Lockable is implemented by sinks whose concurrency lock is installed
// late, once the process knows concurrent writers exist. The registry
// installs the lock under its own exclusive lock before the first
// handle is published, so a Lockable sink is never written to before
// SetLock has completed.
type Lockable interface {
	// HasLock reports whether a lock has been installed.
	HasLock() bool

	// SetLock installs the concurrency lock. Installing twice is a
	// broken invariant and panics.
	SetLock(l sync.Locker)

	// SetEscapeNewlines toggles escaping of embedded newlines in
	// messages.
	SetEscapeNewlines(on bool)
}
