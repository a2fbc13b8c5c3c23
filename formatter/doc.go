// Package formatter compiles output pattern strings into renderers.
//
// Patterns use %-tokens in the spdlog tradition: %Y/%m/%d for the date,
// %T for HH:MM:SS, %e for milliseconds, %l for the level name, %n for
// the logger key, %v for the message (followed by any structured
// fields as key=value pairs), %g/%s/%#/%! for caller file, basename,
// line, and function, and %% for a literal percent sign.
//
// Compilation happens once per pattern; rendering appends to a
// caller-owned buffer and performs no allocations.
package formatter
