package zapsink

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/sitelog/core"
)

// Sink forwards entries to a zapcore.Core. It lets an existing zap
// pipeline (encoders, samplers, tees) serve as the shared output
// target while handles keep their own level gates; the zap core's
// formatting and synchronization are used as-is, so Sink does not
// implement sink.Lockable and the registry skips lock installation.
type Sink struct {
	core zapcore.Core
}

// New creates a Sink wrapping the given zap core.
func New(zc zapcore.Core) *Sink {
	return &Sink{core: zc}
}

// Write converts the entry and hands it to the zap core. The handle
// has already applied its own level gate; the zap core's enablement is
// still honored so a stricter zap configuration wins.
func (s *Sink) Write(e *core.Entry) error {
	ent := zapcore.Entry{
		Time:       e.Time,
		Level:      toZapLevel(e.Level),
		LoggerName: e.Key,
		Message:    e.Message,
	}
	if e.Caller.Defined {
		ent.Caller = zapcore.NewEntryCaller(0, e.Caller.File, e.Caller.Line, true)
	}

	if !s.core.Enabled(ent.Level) {
		return nil
	}
	return s.core.Write(ent, toZapFields(e.Fields))
}

// Flush syncs the zap core.
func (s *Sink) Flush() error {
	return s.core.Sync()
}

// toZapLevel maps handle levels onto zap's ladder. zap has no trace or
// critical: trace collapses into debug, and critical maps to DPanic,
// the lowest zap level that io cores sync on write.
func toZapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.TraceLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.DPanicLevel
	}
}

func toZapFields(fields []core.Field) []zapcore.Field {
	if len(fields) == 0 {
		return nil
	}
	zfs := make([]zapcore.Field, 0, len(fields))
	for _, f := range fields {
		switch f.Type {
		case core.StringType, core.ErrorType:
			zfs = append(zfs, zap.String(f.Key, f.Str))
		case core.Int64Type:
			zfs = append(zfs, zap.Int64(f.Key, f.Int64))
		case core.Float64Type:
			zfs = append(zfs, zap.Float64(f.Key, f.Float64))
		case core.BoolType:
			zfs = append(zfs, zap.Bool(f.Key, f.Int64 == 1))
		case core.DurationType:
			zfs = append(zfs, zap.Duration(f.Key, time.Duration(f.Int64)))
		default:
			zfs = append(zfs, zap.Any(f.Key, f.Any))
		}
	}
	return zfs
}
