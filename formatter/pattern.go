package formatter

import (
	"bytes"
	"strconv"

	"github.com/philipp01105/sitelog/core"
)

// DefaultPattern is the process-wide default output pattern.
const DefaultPattern = "[%Y-%m-%d %T.%e][%l][%n] %v"

// segment kinds produced by compiling a pattern string.
type segKind uint8

const (
	segLiteral segKind = iota
	segYear            // %Y
	segMonth           // %m
	segDay             // %d
	segTime            // %T -> HH:MM:SS
	segMillis          // %e
	segLevel           // %l
	segKey             // %n
	segMessage         // %v (message plus trailing key=value fields)
	segFile            // %g
	segShortFile       // %s
	segLine            // %#
	segFunction        // %!
)

type segment struct {
	kind segKind
	lit  string
}

// Pattern is a compiled output pattern. It renders entries into a
// caller-owned buffer so the hot path performs no allocations of its
// own. A Pattern is immutable after compilation and safe for
// concurrent use.
type Pattern struct {
	source      string
	segments    []segment
	needsCaller bool
}

// NewPattern compiles a pattern string. Unrecognized % tokens are kept
// verbatim so a typo degrades to visible text rather than an error.
func NewPattern(pattern string) *Pattern {
	p := &Pattern{source: pattern}

	var lit bytes.Buffer
	flush := func() {
		if lit.Len() > 0 {
			p.segments = append(p.segments, segment{kind: segLiteral, lit: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' || i+1 == len(pattern) {
			lit.WriteByte(c)
			continue
		}
		i++
		kind, ok := tokenKind(pattern[i])
		if !ok {
			if pattern[i] == '%' {
				lit.WriteByte('%')
			} else {
				lit.WriteByte('%')
				lit.WriteByte(pattern[i])
			}
			continue
		}
		flush()
		p.segments = append(p.segments, segment{kind: kind})
		if kind == segFile || kind == segShortFile || kind == segLine || kind == segFunction {
			p.needsCaller = true
		}
	}
	flush()

	return p
}

func tokenKind(c byte) (segKind, bool) {
	switch c {
	case 'Y':
		return segYear, true
	case 'm':
		return segMonth, true
	case 'd':
		return segDay, true
	case 'T':
		return segTime, true
	case 'e':
		return segMillis, true
	case 'l':
		return segLevel, true
	case 'n':
		return segKey, true
	case 'v':
		return segMessage, true
	case 'g':
		return segFile, true
	case 's':
		return segShortFile, true
	case '#':
		return segLine, true
	case '!':
		return segFunction, true
	}
	return 0, false
}

// Source returns the pattern string this Pattern was compiled from.
func (p *Pattern) Source() string { return p.source }

// NeedsCaller reports whether the pattern references caller tokens, so
// handles can skip runtime.Caller when the output would not use it.
func (p *Pattern) NeedsCaller() bool { return p.needsCaller }

// Format renders the entry into buf without a trailing newline.
func (p *Pattern) Format(e *core.Entry, buf *bytes.Buffer) {
	for _, seg := range p.segments {
		switch seg.kind {
		case segLiteral:
			buf.WriteString(seg.lit)
		case segYear:
			writePadded(buf, e.Time.Year(), 4)
		case segMonth:
			writePadded(buf, int(e.Time.Month()), 2)
		case segDay:
			writePadded(buf, e.Time.Day(), 2)
		case segTime:
			writePadded(buf, e.Time.Hour(), 2)
			buf.WriteByte(':')
			writePadded(buf, e.Time.Minute(), 2)
			buf.WriteByte(':')
			writePadded(buf, e.Time.Second(), 2)
		case segMillis:
			writePadded(buf, e.Time.Nanosecond()/1e6, 3)
		case segLevel:
			buf.WriteString(e.Level.String())
		case segKey:
			buf.WriteString(e.Key)
		case segMessage:
			buf.WriteString(e.Message)
			for _, f := range e.Fields {
				buf.WriteByte(' ')
				buf.WriteString(f.Key)
				buf.WriteByte('=')
				buf.WriteString(f.StringValue())
			}
		case segFile:
			if e.Caller.Defined {
				buf.WriteString(e.Caller.File)
			}
		case segShortFile:
			if e.Caller.Defined {
				buf.WriteString(e.Caller.ShortFile)
			}
		case segLine:
			if e.Caller.Defined {
				buf.WriteString(strconv.Itoa(e.Caller.Line))
			}
		case segFunction:
			if e.Caller.Defined {
				buf.WriteString(e.Caller.Function)
			}
		}
	}
}

// writePadded writes n left-padded with zeros to the given width.
func writePadded(buf *bytes.Buffer, n, width int) {
	var tmp [8]byte
	s := strconv.AppendInt(tmp[:0], int64(n), 10)
	for pad := width - len(s); pad > 0; pad-- {
		buf.WriteByte('0')
	}
	buf.Write(s)
}
