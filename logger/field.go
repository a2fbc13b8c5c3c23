package logger

import (
	"time"

	"github.com/philipp01105/sitelog/core"
)

// Field re-exports and constructors so call sites can build structured
// fields without importing core directly.
type Field = core.Field

// String creates a string field.
func String(key, value string) Field { return core.String(key, value) }

// Int creates an integer field.
func Int(key string, value int) Field { return core.Int(key, value) }

// Int64 creates a 64-bit integer field.
func Int64(key string, value int64) Field { return core.Int64(key, value) }

// Float64 creates a float field.
func Float64(key string, value float64) Field { return core.Float64(key, value) }

// Bool creates a boolean field.
func Bool(key string, value bool) Field { return core.Bool(key, value) }

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field { return core.Duration(key, value) }

// Err creates an error field.
func Err(err error) Field { return core.Err(err) }

// Any creates a field holding an arbitrary value.
func Any(key string, value interface{}) Field { return core.Any(key, value) }
