package video

import (
	"strings"
	"testing"
)

func TestFramesRequestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*FramesRequest)
		wantErr     bool
		errContains string
	}{
		{
			name:   "defaults are valid",
			mutate: func(r *FramesRequest) {},
		},
		{
			name: "zero capture rate",
			mutate: func(r *FramesRequest) {
				r.CaptureRate = 0
			},
			wantErr:     true,
			errContains: "capture rate",
		},
		{
			name: "negative capture rate",
			mutate: func(r *FramesRequest) {
				r.CaptureRate = -3
			},
			wantErr:     true,
			errContains: "capture rate",
		},
		{
			name: "unsupported image format",
			mutate: func(r *FramesRequest) {
				r.ImageFormat = "gif"
			},
			wantErr:     true,
			errContains: "unsupported image format",
		},
		{
			name: "image format normalized",
			mutate: func(r *FramesRequest) {
				r.ImageFormat = ".PNG"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewFramesRequest()
			tt.mutate(req)

			err := req.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Validate() expected error, got nil")
					return
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Validate() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestFramesRequestPrepare(t *testing.T) {
	meta := &Metadata{
		Path:            "/videos/test.mp4",
		Width:           1920,
		Height:          1080,
		FPS:             30,
		FrameCount:      1800,
		DurationSeconds: 60,
	}

	tests := []struct {
		name         string
		mutate       func(*FramesRequest)
		wantExpected int
	}{
		{
			name:         "every frame",
			mutate:       func(r *FramesRequest) {},
			wantExpected: 1800,
		},
		{
			name: "every 30th frame",
			mutate: func(r *FramesRequest) {
				r.CaptureRate = 30
			},
			wantExpected: 60,
		},
		{
			name: "partial bucket rounds up",
			mutate: func(r *FramesRequest) {
				r.CaptureRate = 7
			},
			wantExpected: 258, // ceil(1800 / 7)
		},
		{
			name: "range restricts the frame span",
			mutate: func(r *FramesRequest) {
				r.StartTime = "10"
				r.StopTime = "20"
				r.CaptureRate = 30
			},
			wantExpected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewFramesRequest()
			tt.mutate(req)

			if err := req.Prepare(meta); err != nil {
				t.Fatalf("Prepare() unexpected error: %v", err)
			}

			if req.ImagesExpected != tt.wantExpected {
				t.Errorf("Prepare() ImagesExpected = %d, want %d", req.ImagesExpected, tt.wantExpected)
			}
		})
	}

	t.Run("output naming", func(t *testing.T) {
		req := NewFramesRequest()
		if err := req.Prepare(meta); err != nil {
			t.Fatalf("Prepare() unexpected error: %v", err)
		}

		if req.OutputDirname() != "test.mp4" {
			t.Errorf("OutputDirname() = %q, want %q", req.OutputDirname(), "test.mp4")
		}
		if got := req.ImageFilename(42); got != "test_42.jpg" {
			t.Errorf("ImageFilename(42) = %q, want %q", got, "test_42.jpg")
		}
	})
}
