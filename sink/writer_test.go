package sink

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/philipp01105/sitelog/core"
	"github.com/philipp01105/sitelog/formatter"
)

func entry(msg string) *core.Entry {
	return &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Key:     "test",
		Message: msg,
	}
}

func TestWriterSink_WriteAndFlush(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf, formatter.NewPattern("[%l][%n] %v"))

	if err := s.Write(entry("hello")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	// Output is buffered until Flush.
	if buf.Len() != 0 {
		t.Errorf("bytes reached the target before Flush: %q", buf.String())
	}

	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := buf.String(); got != "[info][test] hello\n" {
		t.Errorf("flushed output = %q", got)
	}
}

func TestWriterSink_EscapeNewlines(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf, formatter.NewPattern("%v"))

	// Escaping is on by default: one entry stays one line.
	s.Write(entry("two\nlines"))
	s.Flush()
	if got := buf.String(); got != `two\nlines`+"\n" {
		t.Errorf("escaped output = %q", got)
	}

	buf.Reset()
	s.SetEscapeNewlines(false)
	s.Write(entry("two\nlines"))
	s.Flush()
	if !strings.Contains(buf.String(), "two\nlines") {
		t.Errorf("unescaped output = %q", buf.String())
	}
}

func TestWriterSink_LockInstallation(t *testing.T) {
	s := NewWriterSink(&bytes.Buffer{}, formatter.NewPattern("%v"))

	if s.HasLock() {
		t.Fatal("fresh sink reports an installed lock")
	}
	s.SetLock(new(sync.Mutex))
	if !s.HasLock() {
		t.Fatal("lock installation not recorded")
	}

	defer func() {
		if recover() == nil {
			t.Error("second SetLock did not panic")
		}
	}()
	s.SetLock(new(sync.Mutex))
}

func TestWriterSink_ConcurrentWritesAfterLock(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf, formatter.NewPattern("%v"))
	s.SetLock(new(sync.Mutex))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if err := s.Write(entry("concurrent")); err != nil {
					t.Errorf("Write: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 800 {
		t.Errorf("got %d lines, want 800", len(lines))
	}
	for _, line := range lines {
		if line != "concurrent" {
			t.Fatalf("interleaved line: %q", line)
		}
	}
}

type syncCountingWriter struct {
	bytes.Buffer
	syncs int
}

func (w *syncCountingWriter) Sync() error {
	w.syncs++
	return nil
}

func TestWriterSink_FlushSyncsTarget(t *testing.T) {
	w := &syncCountingWriter{}
	s := NewWriterSink(w, formatter.NewPattern("%v"))

	s.Write(entry("x"))
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if w.syncs != 1 {
		t.Errorf("target synced %d times, want 1", w.syncs)
	}
}
