package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}
	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeStoreWrite, cause, "failed to save")

	if err.Code != ErrCodeStoreWrite {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeStoreWrite)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidDimension, "bad width")

	if !Is(err, ErrCodeInvalidDimension) {
		t.Error("Is() = false for matching code, want true")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is() = true for non-matching code, want false")
	}
	if Is(errors.New("plain"), ErrCodeInvalidDimension) {
		t.Error("Is() = true for plain error, want false")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInternal, "boom")); got != ErrCodeInternal {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeInternal)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %v for plain error, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "row count must be non-negative")
	if got := UserMessage(err); got != "row count must be non-negative" {
		t.Errorf("UserMessage() = %q, want message without code prefix", got)
	}

	plain := errors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain error")
	}
}

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name                    string
		width, height, tileSize float64
		wantErr                 bool
	}{
		{"valid", 960, 720, 10, false},
		{"zero width", 0, 720, 10, true},
		{"negative height", 960, -1, 10, true},
		{"zero tile", 960, 720, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.width, tt.height, tt.tileSize)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDimension) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidDimension)
			}
		})
	}
}

func TestValidateRowCount(t *testing.T) {
	if err := ValidateRowCount(50, 10000); err != nil {
		t.Errorf("ValidateRowCount(50, 10000) = %v, want nil", err)
	}
	if err := ValidateRowCount(-1, 10000); err == nil {
		t.Error("ValidateRowCount(-1, ...) = nil, want error")
	}
	if err := ValidateRowCount(20000, 10000); err == nil {
		t.Error("ValidateRowCount above cap = nil, want error")
	}
	// A zero max disables the cap.
	if err := ValidateRowCount(20000, 0); err != nil {
		t.Errorf("ValidateRowCount with no cap = %v, want nil", err)
	}
}
