package core

import (
	"errors"
	"testing"
)

func TestLevel_Ordering(t *testing.T) {
	if !(TraceLevel < DebugLevel && DebugLevel < InfoLevel && InfoLevel < WarnLevel &&
		WarnLevel < ErrorLevel && ErrorLevel < CriticalLevel && CriticalLevel < OffLevel) {
		t.Error("level ordering is broken; emission gates depend on trace < ... < off")
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	if err != nil {
		t.Fatalf("ParseLevel(debug) returned error: %v", err)
	}
	if lvl != DebugLevel {
		t.Errorf("ParseLevel(debug) = %v, want DebugLevel", lvl)
	}

	// Case-insensitive, plus the warning alias.
	if lvl, _ := ParseLevel("CRITICAL"); lvl != CriticalLevel {
		t.Errorf("ParseLevel(CRITICAL) = %v, want CriticalLevel", lvl)
	}
	if lvl, _ := ParseLevel("warning"); lvl != WarnLevel {
		t.Errorf("ParseLevel(warning) = %v, want WarnLevel", lvl)
	}

	_, err = ParseLevel("loud")
	if !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("ParseLevel(loud) error = %v, want ErrUnknownLevel", err)
	}
}

func TestLevel_TextRoundTrip(t *testing.T) {
	for _, lvl := range []Level{TraceLevel, InfoLevel, CriticalLevel, OffLevel} {
		text, err := lvl.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", lvl, err)
		}
		var back Level
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", text, err)
		}
		if back != lvl {
			t.Errorf("round trip of %v produced %v", lvl, back)
		}
	}

	var lvl Level
	if err := lvl.UnmarshalText([]byte("nope")); err == nil {
		t.Error("UnmarshalText accepted an unknown level")
	}
}
