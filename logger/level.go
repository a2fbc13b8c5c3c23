package logger

import "github.com/philipp01105/sitelog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel    = core.TraceLevel
	DebugLevel    = core.DebugLevel
	InfoLevel     = core.InfoLevel
	WarnLevel     = core.WarnLevel
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
	OffLevel      = core.OffLevel
)
