package errdef

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"new carries code", New(CodeInvalidURL, "bad url"), CodeInvalidURL},
		{"wrap carries code", Wrap(CodeNetwork, cause, "perform request"), CodeNetwork},
		{"newf carries code", Newf(CodeTimeout, "after %ds", 5), CodeTimeout},
		{"wrapped deeper still found", fmt.Errorf("outer: %w", Wrap(CodeHistory, cause, "read")), CodeHistory},
		{"plain error is unknown", cause, CodeUnknown},
		{"nil is unknown", nil, CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.expected {
				t.Errorf("CodeOf = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodeNetwork, cause, "perform request")

	if !errors.Is(err, cause) {
		t.Error("Expected wrapped error to match its cause via errors.Is")
	}
	if err.Error() != "perform request: boom" {
		t.Errorf("Unexpected message: %q", err.Error())
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(CodeNetwork, nil, "anything"); err != nil {
		t.Errorf("Expected nil for nil cause, got %v", err)
	}
}

func TestIsCode(t *testing.T) {
	err := New(CodeSchemaViolation, "no entries")
	if !IsCode(err, CodeSchemaViolation) {
		t.Error("Expected IsCode to match")
	}
	if IsCode(err, CodeMalformedJSON) {
		t.Error("Expected IsCode to reject a different code")
	}
	if IsCode(nil, CodeUnknown) {
		t.Error("Expected IsCode(nil, ...) to be false")
	}
}
