package core

import (
	"errors"
	"testing"
	"time"
)

func TestField_StringValue(t *testing.T) {
	if got := String("k", "v").StringValue(); got != "v" {
		t.Errorf("String field = %q, want v", got)
	}
	if got := Int("n", 42).StringValue(); got != "42" {
		t.Errorf("Int field = %q, want 42", got)
	}
	if got := Bool("ok", true).StringValue(); got != "true" {
		t.Errorf("Bool field = %q, want true", got)
	}
	if got := Duration("d", 1500*time.Millisecond).StringValue(); got != "1.5s" {
		t.Errorf("Duration field = %q, want 1.5s", got)
	}
	if got := Err(errors.New("boom")).StringValue(); got != "boom" {
		t.Errorf("Err field = %q, want boom", got)
	}
	if got := Any("v", struct{ A int }{7}).StringValue(); got != "{7}" {
		t.Errorf("Any field = %q, want {7}", got)
	}
}

func TestGetCaller(t *testing.T) {
	c := GetCaller(1)
	if !c.Defined {
		t.Fatal("GetCaller(1) did not resolve a frame")
	}
	if c.ShortFile != "field_test.go" {
		t.Errorf("caller short file = %q, want field_test.go", c.ShortFile)
	}
	if c.Line == 0 {
		t.Error("caller line is zero")
	}
}
