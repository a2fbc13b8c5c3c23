package logger

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/philipp01105/sitelog/core"
	"github.com/philipp01105/sitelog/sink"
)

// callerSkip is the frame distance from core.GetCaller to the user's
// log statement: GetCaller -> emit -> public method -> caller.
const callerSkip = 3

// Logger is a registry-owned handle bound to one key. Exactly one
// Logger exists per key for the life of the process and it is never
// deleted, so references to it may be cached indefinitely.
//
// The level is the only field that changes after construction. It
// lives in an atomic cell so an administrative update is observed by
// every cached reference on its next log call, without rebinding and
// without locks on the emission path.
type Logger struct {
	key           string
	pattern       string
	level         atomic.Int32
	flushOn       core.Level
	sink          sink.Sink
	captureCaller bool
}

// Option configures a Logger at construction.
type Option func(*Logger)

// WithCaller enables caller capture on every emitted entry. Capture
// costs a runtime.Caller per entry, so it defaults to off.
func WithCaller(enabled bool) Option {
	return func(l *Logger) { l.captureCaller = enabled }
}

// New creates a handle for key writing through s. The flush threshold
// is fixed at CriticalLevel: a critical entry forces an immediate sink
// flush so it is not lost to buffering if the process dies right after.
func New(key string, level core.Level, pattern string, s sink.Sink, opts ...Option) *Logger {
	l := &Logger{
		key:     key,
		pattern: pattern,
		flushOn: core.CriticalLevel,
		sink:    s,
	}
	l.level.Store(int32(level))
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Key returns the handle's key.
func (l *Logger) Key() string { return l.key }

// Pattern returns the output pattern the handle was built with.
func (l *Logger) Pattern() string { return l.pattern }

// FlushThreshold returns the level at or above which every entry
// forces a sink flush.
func (l *Logger) FlushThreshold() core.Level { return l.flushOn }

// Level returns the handle's current level.
func (l *Logger) Level() core.Level {
	return core.Level(l.level.Load())
}

// SetLevel updates the handle's level in place. All holders of a
// cached reference observe the new level on their next log call.
func (l *Logger) SetLevel(level core.Level) {
	l.level.Store(int32(level))
}

// Enabled reports whether an entry at the given level would be emitted.
func (l *Logger) Enabled(level core.Level) bool {
	return level < core.OffLevel && level >= core.Level(l.level.Load())
}

// Flush forces the shared sink to drain its buffers.
func (l *Logger) Flush() error {
	return l.sink.Flush()
}

// emit builds the entry and writes it through the sink. Level gating
// happened in the public method, before any formatting work.
func (l *Logger) emit(level core.Level, msg string, fields []core.Field) {
	e := core.Entry{
		Time:    time.Now(),
		Level:   level,
		Key:     l.key,
		Message: msg,
		Fields:  fields,
	}
	if l.captureCaller {
		e.Caller = core.GetCaller(callerSkip)
	}

	if err := l.sink.Write(&e); err != nil {
		return
	}
	if level >= l.flushOn {
		_ = l.sink.Flush()
	}
}

// Trace logs a trace message.
func (l *Logger) Trace(msg string, fields ...core.Field) {
	if l.Enabled(core.TraceLevel) {
		l.emit(core.TraceLevel, msg, fields)
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if l.Enabled(core.DebugLevel) {
		l.emit(core.DebugLevel, msg, fields)
	}
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...core.Field) {
	if l.Enabled(core.InfoLevel) {
		l.emit(core.InfoLevel, msg, fields)
	}
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if l.Enabled(core.WarnLevel) {
		l.emit(core.WarnLevel, msg, fields)
	}
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...core.Field) {
	if l.Enabled(core.ErrorLevel) {
		l.emit(core.ErrorLevel, msg, fields)
	}
}

// Critical logs a critical message and flushes the sink.
func (l *Logger) Critical(msg string, fields ...core.Field) {
	if l.Enabled(core.CriticalLevel) {
		l.emit(core.CriticalLevel, msg, fields)
	}
}

// Tracef logs a formatted trace message.
func (l *Logger) Tracef(format string, args ...interface{}) {
	if l.Enabled(core.TraceLevel) {
		l.emit(core.TraceLevel, fmt.Sprintf(format, args...), nil)
	}
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.Enabled(core.DebugLevel) {
		l.emit(core.DebugLevel, fmt.Sprintf(format, args...), nil)
	}
}

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...interface{}) {
	if l.Enabled(core.InfoLevel) {
		l.emit(core.InfoLevel, fmt.Sprintf(format, args...), nil)
	}
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	if l.Enabled(core.WarnLevel) {
		l.emit(core.WarnLevel, fmt.Sprintf(format, args...), nil)
	}
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.Enabled(core.ErrorLevel) {
		l.emit(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
	}
}

// Criticalf logs a formatted critical message and flushes the sink.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	if l.Enabled(core.CriticalLevel) {
		l.emit(core.CriticalLevel, fmt.Sprintf(format, args...), nil)
	}
}
