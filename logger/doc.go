// Package logger provides the per-key handle that log statements write
// through.
//
// Handles are built by the registry, one per key, and live for the
// process. Everything about a handle is fixed at construction except
// its level, which sits in an atomic cell: SetLevel takes effect for
// every cached reference immediately, and the level gate on the
// emission path is a single atomic load. Entries at CriticalLevel
// force a sink flush after the write.
package logger
