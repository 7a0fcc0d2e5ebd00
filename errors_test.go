package quat

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestStructuredErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType ErrorType
		wantOp   string
		wantMsg  string
		checkFn  func(error) bool
	}{
		{
			name:     "Invalid Length Error",
			err:      NewInvalidLengthError("New", 3),
			wantType: ErrTypeInvalidLength,
			wantOp:   "New",
			wantMsg:  "expected a sequence of length 4, got 3",
			checkFn:  IsInvalidLengthError,
		},
		{
			name:     "Unsupported Type Error",
			err:      NewUnsupportedTypeError("Add", "abc"),
			wantType: ErrTypeUnsupportedType,
			wantOp:   "Add",
			wantMsg:  "got string",
			checkFn:  IsUnsupportedTypeError,
		},
		{
			name:     "Division By Zero Error",
			err:      ErrDivisionByZero,
			wantType: ErrTypeDivisionByZero,
			wantOp:   "Inv",
			wantMsg:  "zero quaternion has no inverse",
			checkFn:  IsDivisionByZeroError,
		},
		{
			name:     "Non Finite Error",
			err:      NewNonFiniteError("New", [4]float64{1, 0, 0, 0}),
			wantType: ErrTypeNonFinite,
			wantOp:   "New",
			wantMsg:  "coordinates must be finite",
			checkFn:  IsNonFiniteError,
		},
		{
			name:     "Invalid Arg Error",
			err:      ErrInvalidArg,
			wantType: ErrTypeInvalidArg,
			wantOp:   "Vector",
			wantMsg:  "invalid argument",
			checkFn:  IsInvalidArgError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qerr, ok := tt.err.(*QuatError)
			if !ok {
				t.Fatalf("Expected QuatError, got %T", tt.err)
			}

			if qerr.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", qerr.Type, tt.wantType)
			}
			if qerr.Op != tt.wantOp {
				t.Errorf("Op = %q, want %q", qerr.Op, tt.wantOp)
			}
			if !strings.Contains(qerr.Message, tt.wantMsg) {
				t.Errorf("Message = %q, want it to contain %q", qerr.Message, tt.wantMsg)
			}
			if !tt.checkFn(tt.err) {
				t.Errorf("check function returned false for %v", tt.err)
			}
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	err := NewInvalidLengthError("New", 5)
	want := "quat InvalidLength error in New: expected a sequence of length 4, got 5"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	cause := errors.New("disk full")
	wrapped := &QuatError{Type: ErrTypeInvalidArg, Op: "LoadVectors", Message: "read failed", Err: cause}
	if !strings.HasSuffix(wrapped.Error(), "(caused by: disk full)") {
		t.Errorf("Error() = %q, missing cause", wrapped.Error())
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestErrorsIsMatchesByType(t *testing.T) {
	_, err := New([]int{1, 2, 3})
	if !errors.Is(err, ErrInvalidLength) {
		t.Errorf("errors.Is(%v, ErrInvalidLength) = false", err)
	}
	if errors.Is(err, ErrUnsupportedType) {
		t.Errorf("errors.Is(%v, ErrUnsupportedType) = true", err)
	}

	wrapped := fmt.Errorf("loading fixture: %w", err)
	if !errors.Is(wrapped, ErrInvalidLength) {
		t.Error("errors.Is should see through fmt wrapping")
	}

	var qerr *QuatError
	if !errors.As(wrapped, &qerr) || qerr.Context != 3 {
		t.Errorf("errors.As context = %v, want 3", qerr)
	}
}

func TestErrorTypeNames(t *testing.T) {
	for typ := ErrTypeInvalidLength; typ <= ErrTypeInvalidArg; typ++ {
		got, ok := ParseErrorType(typ.String())
		if !ok || got != typ {
			t.Errorf("ParseErrorType(%q) = %v, %v", typ.String(), got, ok)
		}
	}
	if _, ok := ParseErrorType("Overflow"); ok {
		t.Error("ParseErrorType accepted an unknown name")
	}
	if got := ErrorType(99).String(); got != "Unknown" {
		t.Errorf("String() = %q, want Unknown", got)
	}
}

func TestPredicatesRejectForeignErrors(t *testing.T) {
	err := errors.New("plain")
	if IsInvalidLengthError(err) || IsUnsupportedTypeError(err) || IsDivisionByZeroError(err) ||
		IsNonFiniteError(err) || IsInvalidArgError(err) {
		t.Error("predicate matched a non-QuatError")
	}
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	tests := []struct {
		err   error
		match func(error) bool
	}{
		{NewInvalidLengthError("New", 3), IsInvalidLengthError},
		{NewUnsupportedTypeError("New", "x"), IsUnsupportedTypeError},
		{NewDivisionByZeroError("Inv", "zero"), IsDivisionByZeroError},
		{NewNonFiniteError("Exp", [4]float64{math.Inf(1), 0, 0, 0}), IsNonFiniteError},
		{NewInvalidArgError("Pow", "bad"), IsInvalidArgError},
	}
	for _, tt := range tests {
		wrapped := fmt.Errorf("vector 7: %w", tt.err)
		if !tt.match(wrapped) {
			t.Errorf("predicate did not match wrapped %v", tt.err)
		}
		if !tt.match(fmt.Errorf("outer: %w", wrapped)) {
			t.Errorf("predicate did not match doubly wrapped %v", tt.err)
		}
	}

	if IsDivisionByZeroError(fmt.Errorf("inv: %w", NewNonFiniteError("Inv", [4]float64{}))) {
		t.Error("IsDivisionByZeroError matched a wrapped NonFinite error")
	}
}
