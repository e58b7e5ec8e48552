package unixts

import (
	"fmt"
	"testing"
)

func TestOverflowError(t *testing.T) {
	err := overflow("add")
	expected := "unixts: add overflows int64"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestIsOverflow(t *testing.T) {
	err := overflow("sub")

	// Direct.
	o, ok := IsOverflow(err)
	if !ok {
		t.Fatal("expected IsOverflow to return true")
	}
	if o.Op != "sub" {
		t.Errorf("expected op sub, got %s", o.Op)
	}

	// Wrapped.
	wrapped := fmt.Errorf("wrapped: %w", err)
	o2, ok2 := IsOverflow(wrapped)
	if !ok2 {
		t.Fatal("expected IsOverflow to unwrap wrapped error")
	}
	if o2.Op != "sub" {
		t.Errorf("expected op sub, got %s", o2.Op)
	}

	// Other error kinds.
	if _, ok3 := IsOverflow(&SyntaxError{Literal: "x", Reason: "bad"}); ok3 {
		t.Fatal("expected IsOverflow to return false for a syntax error")
	}

	// Nil.
	if _, ok4 := IsOverflow(nil); ok4 {
		t.Fatal("expected IsOverflow to return false for nil")
	}
}

func TestIsSyntax(t *testing.T) {
	err := &SyntaxError{Literal: "1.2.3", Reason: "multiple decimal points"}

	expected := `unixts: invalid literal "1.2.3": multiple decimal points`
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}

	s, ok := IsSyntax(fmt.Errorf("config: %w", err))
	if !ok {
		t.Fatal("expected IsSyntax to unwrap wrapped error")
	}
	if s.Literal != "1.2.3" {
		t.Errorf("unexpected literal: %s", s.Literal)
	}

	if _, ok := IsSyntax(overflow("parse")); ok {
		t.Fatal("expected IsSyntax to return false for an overflow error")
	}
}

func TestPrecisionError(t *testing.T) {
	err := &PrecisionError{E: 20, Max: MaxSubsecPrecision}
	expected := "unixts: precision 10^-20 exceeds maximum 10^-19"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}
