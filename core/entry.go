package core

import (
	"path/filepath"
	"runtime"
	"time"
)

// Entry represents a single log event flowing from a handle to the sink.
type Entry struct {
	Time    time.Time
	Level   Level
	Key     string
	Message string
	Fields  []Field
	Caller  CallerInfo
}

// CallerInfo contains information about the emitting call site.
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// GetCaller retrieves caller information skip frames above itself.
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}
