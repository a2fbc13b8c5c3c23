// Package core defines the shared types used across the sitelog module.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log event on its way to the sink, and the Field
// type for structured key-value pairs.
//
// Levels follow the trace-to-critical ladder: a handle emits an entry
// when the entry's level is at or above the handle's current level, and
// OffLevel silences a handle entirely. Field encodes values into
// fixed-size numeric slots (Int64, Float64) wherever possible so that
// common types like int, bool, and time.Duration never escape to the
// heap on the logging path.
package core
