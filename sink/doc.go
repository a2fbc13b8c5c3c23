// Package sink defines the shared output target logger handles write
// through, and a writer-backed implementation of it.
//
// A process has one sink shared by every handle. The sink starts out
// lock-free for single-writer use; the registry installs a concurrency
// lock into a Lockable sink exactly once, before the first handle is
// published, so concurrent handles never observe an unarmed sink.
// Flushing is driven by the handles (explicitly or on critical
// entries), never by the sink itself.
package sink
