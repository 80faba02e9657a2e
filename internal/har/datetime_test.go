package har

import (
	"testing"
	"time"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		expected string
	}{
		{
			name:     "HAR standard format with milliseconds",
			input:    "2023-01-15T14:30:45.123Z",
			expected: "2023-01-15T14:30:45.123Z",
		},
		{
			name:     "HAR format without milliseconds",
			input:    "2023-01-15T14:30:45Z",
			expected: "2023-01-15T14:30:45Z",
		},
		{
			name:     "timezone offset converts to UTC",
			input:    "2023-01-15T14:30:45.123-08:00",
			expected: "2023-01-15T22:30:45.123Z",
		},
		{
			name:     "RFC3339Nano precision preserved",
			input:    "2023-01-15T14:30:45.123456789Z",
			expected: "2023-01-15T14:30:45.123456789Z",
		},
		{
			name:    "garbage",
			input:   "not-a-date",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDateTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q, got %v", tt.input, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateTime(%q) returned error: %v", tt.input, err)
			}
			if got := result.UTC().Format(time.RFC3339Nano); got != tt.expected {
				t.Errorf("ParseDateTime(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}
