package http

import (
	"errors"
	"strings"
	"testing"
)

func containsFieldMsg(fe []FieldError, field, fragment string) bool {
	for _, e := range fe {
		if e.Field == field && strings.Contains(e.Message, fragment) {
			return true
		}
	}
	return false
}

func TestHex32Validation(t *testing.T) {
	type P struct {
		MemberID string `validate:"hex32"`
	}
	cv := NewValidator()

	// valid: 32-char lowercase hex
	ok := P{MemberID: strings.Repeat("a", 32)}
	if err := cv.Validate(ok); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	// invalid samples
	for _, s := range []string{
		"",                                  // empty
		strings.Repeat("A", 32),             // uppercase
		"deadbeef",                          // too short
		strings.Repeat("g", 32),             // non-hex char
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",   // 31 chars
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88x", // 33 with extra
	} {
		bad := P{MemberID: s}
		err := cv.Validate(bad)
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "MemberID", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestLoanNumberValidation(t *testing.T) {
	type P struct {
		LoanNumber string `validate:"loannum"`
	}
	cv := NewValidator()

	for _, s := range []string{"LN-2026-3FA2C1", "LN-1999-000000", "LN-2030-ABCDEF"} {
		if err := cv.Validate(P{LoanNumber: s}); err != nil {
			t.Fatalf("expected valid loan number %q, got %v", s, err)
		}
	}
	for _, s := range []string{
		"",                // empty
		"LN-2026-3fa2c1",  // lowercase hex
		"LN-26-3FA2C1",    // short year
		"LN-2026-3FA2C",   // short suffix
		"LN-2026-3FA2C1X", // trailing junk
		"XX-2026-3FA2C1",  // wrong prefix
	} {
		err := cv.Validate(P{LoanNumber: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "LoanNumber", "loan number") {
			t.Fatalf("expected loannum message for %q, got: %+v", s, fe)
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Amount float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{150.50, 2.00, 0.9, 1000} {
		if err := cv.Validate(P{Amount: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{10.123, 2.9999} {
		err := cv.Validate(P{Amount: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Amount", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %v, got %+v", v, fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name     string  `validate:"required"`
		Sequence int     `validate:"oneof=1 2 3"`
		Amount   float64 `validate:"dec2,gt=0"`
	}
	cv := NewValidator()

	// Intentionally violate all
	err := cv.Validate(P{
		Name:     "",    // required
		Sequence: 4,     // oneof
		Amount:   0.123, // dec2 triggers before gt
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	if !containsFieldMsg(fe, "Sequence", "one of 1 2 3") {
		t.Fatalf("missing oneof message for Sequence: %+v", fe)
	}
	if !containsFieldMsg(fe, "Amount", "at most 2 decimal places") {
		t.Fatalf("missing dec2 message for Amount: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
