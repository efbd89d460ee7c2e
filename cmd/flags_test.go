package cmd

import (
	"strings"
	"testing"
)

func TestParseDimensions(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantWidth  int
		wantHeight int
		wantErr    bool
	}{
		{
			name:  "empty means no explicit dimensions",
			input: "",
		},
		{
			name:       "standard dimensions",
			input:      "1920x1080",
			wantWidth:  1920,
			wantHeight: 1080,
		},
		{
			name:       "uppercase separator",
			input:      "640X360",
			wantWidth:  640,
			wantHeight: 360,
		},
		{
			name:    "missing separator",
			input:   "1920",
			wantErr: true,
		},
		{
			name:    "non-numeric width",
			input:   "widex1080",
			wantErr: true,
		},
		{
			name:    "non-numeric height",
			input:   "1920xtall",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			width, height, err := parseDimensions(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseDimensions(%q) expected error, got nil", tt.input)
				} else if !strings.Contains(err.Error(), "invalid dimensions") {
					t.Errorf("parseDimensions(%q) error = %v", tt.input, err)
				}
				return
			}

			if err != nil {
				t.Errorf("parseDimensions(%q) unexpected error: %v", tt.input, err)
				return
			}
			if width != tt.wantWidth || height != tt.wantHeight {
				t.Errorf("parseDimensions(%q) = %dx%d, want %dx%d", tt.input, width, height, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}
