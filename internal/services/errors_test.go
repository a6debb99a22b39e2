package services

import (
	"errors"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	err := Wrap(ErrMalformedInput, "timedtext", "validate cue", "word 3 start after end", nil)
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected wrapped error to match ErrMalformedInput, got %v", err)
	}
	want := "malformed input: timedtext: validate cue: word 3 start after end"
	if err.Error() != want {
		t.Fatalf("Wrap() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(ErrConfiguration, "config", "load", "bad value", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped error to preserve cause, got %v", err)
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected wrapped error to match ErrConfiguration, got %v", err)
	}
}

func TestWrapNilMarkerDefaultsToValidation(t *testing.T) {
	err := Wrap(nil, "ass", "write", "", nil)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected default marker ErrValidation, got %v", err)
	}
}
