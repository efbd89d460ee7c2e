package video

import (
	"strings"
	"testing"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        float64
		wantErr     bool
		errContains string
	}{
		{
			name:  "whole seconds",
			input: "90",
			want:  90,
		},
		{
			name:  "fractional seconds",
			input: "12.5",
			want:  12.5,
		},
		{
			name:  "zero",
			input: "0",
			want:  0,
		},
		{
			name:  "minutes and seconds",
			input: "1:30",
			want:  90,
		},
		{
			name:  "padded minutes and seconds",
			input: "01:30",
			want:  90,
		},
		{
			name:  "hours minutes seconds",
			input: "1:02:03",
			want:  3723,
		},
		{
			name:  "padded hours",
			input: "01:02:03",
			want:  3723,
		},
		{
			name:  "timestamp with fraction truncated",
			input: "1:30.75",
			want:  90,
		},
		{
			name:  "surrounding whitespace",
			input: " 45 ",
			want:  45,
		},
		{
			name:        "negative seconds",
			input:       "-5",
			wantErr:     true,
			errContains: "must not be negative",
		},
		{
			name:        "empty string",
			input:       "",
			wantErr:     true,
			errContains: "empty",
		},
		{
			name:        "seconds component over 59",
			input:       "1:60",
			wantErr:     true,
			errContains: "invalid timestamp",
		},
		{
			name:        "minutes component over 59",
			input:       "1:60:00",
			wantErr:     true,
			errContains: "invalid timestamp",
		},
		{
			name:        "too many components",
			input:       "1:02:03:04",
			wantErr:     true,
			errContains: "invalid timestamp",
		},
		{
			name:        "not a time at all",
			input:       "abc",
			wantErr:     true,
			errContains: "invalid timestamp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTime(%q) expected error, got nil", tt.input)
					return
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("ParseTime(%q) error = %v, want error containing %q", tt.input, err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Errorf("ParseTime(%q) unexpected error: %v", tt.input, err)
				return
			}

			if got != tt.want {
				t.Errorf("ParseTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{
			name:    "zero",
			seconds: 0,
			want:    "0:00:00",
		},
		{
			name:    "negative formats as zero",
			seconds: -10,
			want:    "0:00:00",
		},
		{
			name:    "under a minute",
			seconds: 45,
			want:    "0:00:45",
		},
		{
			name:    "minutes and seconds",
			seconds: 90,
			want:    "0:01:30",
		},
		{
			name:    "hours",
			seconds: 3723,
			want:    "1:02:03",
		},
		{
			name:    "fraction truncated",
			seconds: 59.9,
			want:    "0:00:59",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.seconds); got != tt.want {
				t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}
