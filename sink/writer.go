package sink

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/philipp01105/sitelog/core"
	"github.com/philipp01105/sitelog/formatter"
)

const defaultBufferSize = 4096

// WriterSink renders entries through a compiled pattern and writes the
// resulting lines to an io.Writer behind a bufio buffer.
//
// A fresh WriterSink carries no lock: single-writer use pays nothing
// for synchronization. Before concurrent handles are handed out the
// registry installs a lock via SetLock, exactly once. Embedded
// newlines in messages are escaped by default so one entry stays one
// line; the registry disables escaping when it arms the sink, matching
// the pattern-formatted output it configures.
type WriterSink struct {
	w       *bufio.Writer
	sync    func() error // non-nil when the target supports durable sync
	pattern *formatter.Pattern
	buf     bytes.Buffer

	lock    sync.Locker
	hasLock bool
	escape  bool
}

// NewWriterSink creates a WriterSink that renders entries with the
// given compiled pattern and writes them to w.
func NewWriterSink(w io.Writer, pattern *formatter.Pattern) *WriterSink {
	s := &WriterSink{
		w:       bufio.NewWriterSize(w, defaultBufferSize),
		pattern: pattern,
		escape:  true,
	}
	if syncer, ok := w.(interface{ Sync() error }); ok {
		s.sync = syncer.Sync
	}
	return s
}

// Pattern returns the compiled pattern the sink renders with.
func (s *WriterSink) Pattern() *formatter.Pattern { return s.pattern }

// HasLock reports whether a concurrency lock has been installed.
func (s *WriterSink) HasLock() bool { return s.hasLock }

// SetLock installs the concurrency lock. The caller must guarantee no
// concurrent Write is in flight; the registry does so by installing
// before the first handle is published. A second installation means
// the one-time state was corrupted, which is not recoverable.
func (s *WriterSink) SetLock(l sync.Locker) {
	if s.hasLock {
		panic("sink: concurrency lock installed twice")
	}
	s.lock = l
	s.hasLock = true
}

// SetEscapeNewlines toggles escaping of embedded newlines in messages.
func (s *WriterSink) SetEscapeNewlines(on bool) { s.escape = on }

// Write renders the entry and writes it as one line.
func (s *WriterSink) Write(e *core.Entry) error {
	if s.lock != nil {
		s.lock.Lock()
		defer s.lock.Unlock()
	}

	if s.escape && strings.ContainsRune(e.Message, '\n') {
		escaped := *e
		escaped.Message = strings.ReplaceAll(e.Message, "\n", `\n`)
		e = &escaped
	}

	s.buf.Reset()
	s.pattern.Format(e, &s.buf)
	s.buf.WriteByte('\n')
	_, err := s.w.Write(s.buf.Bytes())
	return err
}

// Flush drains the bufio buffer and, when the target supports it,
// syncs the target itself.
func (s *WriterSink) Flush() error {
	if s.lock != nil {
		s.lock.Lock()
		defer s.lock.Unlock()
	}

	if err := s.w.Flush(); err != nil {
		return err
	}
	if s.sync != nil {
		return s.sync()
	}
	return nil
}
