package core

import (
	"errors"
	"fmt"
	"strings"
)

// Level represents the severity of a log entry or the threshold of a
// logger handle. An entry is emitted when its level is at or above the
// handle's current level, so TraceLevel is the most verbose setting and
// OffLevel suppresses everything.
type Level int8

const (
	// TraceLevel for very fine-grained tracing
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// CriticalLevel for diagnostics that must not be lost to buffering
	CriticalLevel
	// OffLevel disables all output for a handle
	OffLevel
)

// ErrUnknownLevel indicates an unrecognized log level string.
var ErrUnknownLevel = errors.New("unknown log level")

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case CriticalLevel:
		return "critical"
	case OffLevel:
		return "off"
	default:
		return "unknown"
	}
}

// ParseLevel converts a level string to a Level. Matching is
// case-insensitive; "warning" is accepted as an alias for "warn".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "critical":
		return CriticalLevel, nil
	case "off":
		return OffLevel, nil
	}
	return InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// MarshalText implements encoding.TextMarshaler so levels render as
// their names in JSON and YAML.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
