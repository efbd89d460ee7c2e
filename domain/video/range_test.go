package video

import (
	"errors"
	"strings"
	"testing"
)

func TestNewRange(t *testing.T) {
	meta := &Metadata{
		Path:            "/videos/test.mp4",
		Width:           1920,
		Height:          1080,
		FPS:             30,
		FrameCount:      1800,
		DurationSeconds: 60,
	}

	tests := []struct {
		name           string
		startSecond    float64
		stopSecond     float64
		fps            float64
		wantStart      float64
		wantStop       float64
		wantStartFrame int
		wantStopFrame  int
		wantErr        bool
		errContains    string
	}{
		{
			name:           "full video",
			startSecond:    0,
			stopSecond:     60,
			fps:            30,
			wantStart:      0,
			wantStop:       60,
			wantStartFrame: 0,
			wantStopFrame:  1800,
		},
		{
			name:           "inner window",
			startSecond:    10,
			stopSecond:     20,
			fps:            30,
			wantStart:      10,
			wantStop:       20,
			wantStartFrame: 300,
			wantStopFrame:  600,
		},
		{
			name:           "stop clamped to duration",
			startSecond:    30,
			stopSecond:     500,
			fps:            30,
			wantStart:      30,
			wantStop:       60,
			wantStartFrame: 900,
			wantStopFrame:  1800,
		},
		{
			name:           "negative start clamped to zero",
			startSecond:    -5,
			stopSecond:     10,
			fps:            30,
			wantStart:      0,
			wantStop:       10,
			wantStartFrame: 0,
			wantStopFrame:  300,
		},
		{
			name:           "fractional seconds floor to frames",
			startSecond:    0.5,
			stopSecond:     1.5,
			fps:            30,
			wantStart:      0.5,
			wantStop:       1.5,
			wantStartFrame: 15,
			wantStopFrame:  45,
		},
		{
			name:        "start at duration",
			startSecond: 60,
			stopSecond:  70,
			fps:         30,
			wantErr:     true,
			errContains: "at or past the video duration",
		},
		{
			name:        "start past duration",
			startSecond: 90,
			stopSecond:  100,
			fps:         30,
			wantErr:     true,
			errContains: "at or past the video duration",
		},
		{
			name:        "stop before start",
			startSecond: 30,
			stopSecond:  10,
			fps:         30,
			wantErr:     true,
			errContains: "must be greater than start second",
		},
		{
			name:        "stop equals start",
			startSecond: 30,
			stopSecond:  30,
			fps:         30,
			wantErr:     true,
			errContains: "must be greater than start second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRange(meta, tt.startSecond, tt.stopSecond, tt.fps)

			if tt.wantErr {
				if err == nil {
					t.Errorf("NewRange() expected error, got nil")
					return
				}
				if !errors.Is(err, ErrInvalidRange) {
					t.Errorf("NewRange() error = %v, want ErrInvalidRange", err)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("NewRange() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Errorf("NewRange() unexpected error: %v", err)
				return
			}

			if got.StartSecond != tt.wantStart || got.StopSecond != tt.wantStop {
				t.Errorf("NewRange() seconds = %v..%v, want %v..%v", got.StartSecond, got.StopSecond, tt.wantStart, tt.wantStop)
			}
			if got.StartFrame != tt.wantStartFrame || got.StopFrame != tt.wantStopFrame {
				t.Errorf("NewRange() frames = %d..%d, want %d..%d", got.StartFrame, got.StopFrame, tt.wantStartFrame, tt.wantStopFrame)
			}
			if got.StartTimestamp != FormatTimestamp(tt.wantStart) {
				t.Errorf("NewRange() StartTimestamp = %q, want %q", got.StartTimestamp, FormatTimestamp(tt.wantStart))
			}
		})
	}
}

func TestRangeDurationSeconds(t *testing.T) {
	r := Range{StartSecond: 10, StopSecond: 25}
	if got := r.DurationSeconds(); got != 15 {
		t.Errorf("DurationSeconds() = %v, want 15", got)
	}
}
